package entity

// UserState состояние пользователя в диалоге
type UserState string

const (
	StateMainMenu      UserState = "main_menu"      // В главном меню
	StateAwaitingImage UserState = "awaiting_image" // Ожидание снимка для анализа
	StateProcessing    UserState = "processing"     // Обработка изображения
)

// User представляет пользователя бота
type User struct {
	ID        int64     // Telegram User ID
	ChatID    int64     // Telegram Chat ID
	State     UserState // Текущее состояние пользователя
	Threshold int       // Персональный порог бинаризации
	HasCustom bool      // Threshold задан пользователем
}

// NewUser создаёт нового пользователя с начальным состоянием
func NewUser(userID, chatID int64) *User {
	return &User{
		ID:     userID,
		ChatID: chatID,
		State:  StateMainMenu,
	}
}

// SetState обновляет состояние пользователя
func (u *User) SetState(state UserState) {
	u.State = state
}

// SetThreshold запоминает персональный порог бинаризации
func (u *User) SetThreshold(threshold int) {
	u.Threshold = threshold
	u.HasCustom = true
}

// ResetThreshold возвращает порог по умолчанию
func (u *User) ResetThreshold() {
	u.Threshold = 0
	u.HasCustom = false
}

package entity

// AnalysisResult хранит итог одного запуска анализа.
type AnalysisResult struct {
	Annotated RasterImage // копия входа с нарисованными контурами
	Count     int         // число найденных объектов
	Contours  []Contour
}

// Summary — значения для отображения результата.
type Summary struct {
	Fields      int     // проанализировано полей
	TotalFields int     // всего полей
	Count       int     // найдено сперматозоидов
	MaxCount    int     // знаменатель в подписи "N/500"
	MeanArea    float64 // средняя площадь объекта в пикселях
	StdDevArea  float64 // стандартное отклонение площади
}

// Description — текстовое описание результата для пользователя.
type Description struct {
	Text string
}

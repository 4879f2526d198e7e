package report

import (
	"context"
	"fmt"
	"strings"

	"sperm-analyzer/internal/domain/entity"
	"sperm-analyzer/internal/domain/port"
)

// TextDescriber формирует подписи в том виде, в каком их показывает интерфейс.
type TextDescriber struct {
	WithAreas bool // добавлять строку со статистикой площадей
}

// NewTextDescriber создаёт описатель результата.
func NewTextDescriber(withAreas bool) *TextDescriber {
	return &TextDescriber{WithAreas: withAreas}
}

// Describe собирает текст из подписей полей и количества.
func (d *TextDescriber) Describe(ctx context.Context, summary entity.Summary) (*entity.Description, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	lines := []string{"Results:", FieldsLabel(summary), CountLabel(summary)}
	if d.WithAreas && summary.Count > 0 {
		lines = append(lines, AreaLabel(summary))
	}
	return &entity.Description{Text: strings.Join(lines, "\n")}, nil
}

// FieldsLabel — подпись "Fields: 1/1".
func FieldsLabel(s entity.Summary) string {
	return fmt.Sprintf("Fields: %d/%d", s.Fields, s.TotalFields)
}

// CountLabel — подпись "Spermatozoa: N/500".
func CountLabel(s entity.Summary) string {
	return fmt.Sprintf("Spermatozoa: %d/%d", s.Count, s.MaxCount)
}

// AreaLabel — средняя площадь объекта и её разброс.
func AreaLabel(s entity.Summary) string {
	return fmt.Sprintf("Mean area: %.1f px (sd %.1f)", s.MeanArea, s.StdDevArea)
}

// Проверка реализации интерфейса
var _ port.ResultDescriber = (*TextDescriber)(nil)

package report

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"sperm-analyzer/internal/domain/entity"
)

func TestTextDescriber_Describe(t *testing.T) {
	summary := entity.Summary{Fields: 1, TotalFields: 1, Count: 12, MaxCount: 500, MeanArea: 9, StdDevArea: 1.5}

	desc, err := NewTextDescriber(false).Describe(context.Background(), summary)
	require.NoError(t, err)
	require.Equal(t, "Results:\nFields: 1/1\nSpermatozoa: 12/500", desc.Text)

	desc, err = NewTextDescriber(true).Describe(context.Background(), summary)
	require.NoError(t, err)
	require.Contains(t, desc.Text, "Mean area: 9.0 px (sd 1.5)")
}

func TestTextDescriber_NoAreaLineWithoutObjects(t *testing.T) {
	desc, err := NewTextDescriber(true).Describe(context.Background(), entity.Summary{Fields: 1, TotalFields: 1, MaxCount: 500})
	require.NoError(t, err)
	require.NotContains(t, desc.Text, "Mean area")
}

func TestTextDescriber_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewTextDescriber(false).Describe(ctx, entity.Summary{})
	require.ErrorIs(t, err, context.Canceled)
}

package messages

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/custodia-labs/lookup/internal/core/domain"
)

func TestViewType_String(t *testing.T) {
	tests := []struct {
		view ViewType
		want string
	}{
		{ViewForm, "form"},
		{ViewHelp, "help"},
		{ViewType(99), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.view.String())
		})
	}
}

func TestViewType_FormIsZeroValue(t *testing.T) {
	var v ViewType
	assert.Equal(t, ViewForm, v)
}

func TestSearchCompleted_CarriesSequence(t *testing.T) {
	msg := SearchCompleted{
		LookupID: "account",
		Seq:      3,
		Results:  []domain.ResultItem{{ID: "id1", Title: "Sample item 1"}},
	}

	assert.Equal(t, 3, msg.Seq)
	assert.Len(t, msg.Results, 1)
	assert.NoError(t, msg.Err)
}

func TestErrorOccurred_WrapsError(t *testing.T) {
	err := errors.New("boom")
	msg := ErrorOccurred{Err: err}

	assert.ErrorIs(t, msg.Err, err)
}

package navigation

import (
	"context"
	"sync"

	"github.com/custodia-labs/lookup/internal/core/domain"
	"github.com/custodia-labs/lookup/internal/core/ports/driven"
	"github.com/custodia-labs/lookup/internal/logger"
)

// Ensure Recorder implements the interface.
var _ driven.Navigator = (*Recorder)(nil)

// Recorder records page references instead of opening them.
type Recorder struct {
	mu    sync.Mutex
	pages []domain.PageReference
}

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Navigate appends page to the history.
func (r *Recorder) Navigate(_ context.Context, page domain.PageReference) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.pages = append(r.pages, page)
	logger.Debug("recorded navigation to %s/%s", page.Attributes.ObjectAPIName, page.Attributes.ActionName)
	return nil
}

// Pages returns a copy of the recorded history, oldest first.
func (r *Recorder) Pages() []domain.PageReference {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]domain.PageReference(nil), r.pages...)
}

// Last returns the most recent page reference.
func (r *Recorder) Last() (domain.PageReference, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.pages) == 0 {
		return domain.PageReference{}, false
	}
	return r.pages[len(r.pages)-1], true
}

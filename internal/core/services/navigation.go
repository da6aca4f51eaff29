package services

import (
	"context"
	"fmt"

	"github.com/custodia-labs/lookup/internal/core/domain"
	"github.com/custodia-labs/lookup/internal/core/ports/driven"
	"github.com/custodia-labs/lookup/internal/core/ports/driving"
	"github.com/custodia-labs/lookup/internal/logger"
)

// Ensure NavigationService implements the interface.
var _ driving.NavigationService = (*NavigationService)(nil)

// NavigationService forwards page references to a navigator.
type NavigationService struct {
	navigator driven.Navigator
}

// NewNavigationService creates a new navigation service.
func NewNavigationService(navigator driven.Navigator) *NavigationService {
	return &NavigationService{navigator: navigator}
}

// Navigate validates and forwards a page reference.
func (s *NavigationService) Navigate(ctx context.Context, page domain.PageReference) error {
	if s.navigator == nil {
		return domain.ErrNavigationUnavailable
	}
	if page.Type == "" || page.Attributes.ObjectAPIName == "" {
		return fmt.Errorf("%w: page reference needs a type and object", domain.ErrInvalidInput)
	}

	logger.Info("navigate type=%s object=%s action=%s defaults=%v",
		page.Type, page.Attributes.ObjectAPIName, page.Attributes.ActionName, page.State.DefaultFieldValues)

	if err := s.navigator.Navigate(ctx, page); err != nil {
		return fmt.Errorf("navigate to %s: %w", page.Attributes.ObjectAPIName, err)
	}
	return nil
}

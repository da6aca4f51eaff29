package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/lookup/internal/core/domain"
)

func TestNavigationService_Navigate(t *testing.T) {
	nav := &mockNavigator{}
	service := NewNavigationService(nav)
	page := domain.NewRecordPage(domain.NewRecordOption{Value: "Account", Label: "New Account"})

	err := service.Navigate(context.Background(), page)

	require.NoError(t, err)
	require.Len(t, nav.pages, 1)
	assert.Equal(t, domain.PageTypeObjectPage, nav.pages[0].Type)
	assert.Equal(t, "Account", nav.pages[0].Attributes.ObjectAPIName)
	assert.Equal(t, domain.ActionNew, nav.pages[0].Attributes.ActionName)
}

func TestNavigationService_Navigate_Errors(t *testing.T) {
	tests := []struct {
		name    string
		service *NavigationService
		page    domain.PageReference
		wantErr error
	}{
		{
			name:    "no navigator",
			service: NewNavigationService(nil),
			page:    domain.NewRecordPage(domain.NewRecordOption{Value: "Account"}),
			wantErr: domain.ErrNavigationUnavailable,
		},
		{
			name:    "missing object",
			service: NewNavigationService(&mockNavigator{}),
			page:    domain.PageReference{Type: domain.PageTypeObjectPage},
			wantErr: domain.ErrInvalidInput,
		},
		{
			name:    "missing type",
			service: NewNavigationService(&mockNavigator{}),
			page:    domain.PageReference{Attributes: domain.PageAttributes{ObjectAPIName: "Account"}},
			wantErr: domain.ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.service.Navigate(context.Background(), tt.page)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestNavigationService_Navigate_WrapsNavigatorError(t *testing.T) {
	navErr := errors.New("no browser")
	service := NewNavigationService(&mockNavigator{err: navErr})

	err := service.Navigate(context.Background(), domain.NewRecordPage(domain.NewRecordOption{Value: "Contact"}))

	assert.ErrorIs(t, err, navErr)
	assert.Contains(t, err.Error(), "Contact")
}

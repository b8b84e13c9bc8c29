package device

import (
	"context"
	"errors"
	"testing"

	"widget/manager"
)

func TestFixed(t *testing.T) {
	canceled, cancel := context.WithCancel(context.Background())
	cancel()

	tests := []struct {
		name    string
		ctx     context.Context
		locator manager.DeviceLocator
		want    manager.Coordinates
		wantErr error
	}{
		{
			name:    "with position",
			ctx:     context.Background(),
			locator: NewFixed(40.7, -74.0),
			want:    manager.Coordinates{Latitude: 40.7, Longitude: -74.0},
		},
		{
			name:    "without position",
			ctx:     context.Background(),
			locator: Fixed{},
			wantErr: ErrPositionUnavailable,
		},
		{
			name:    "context done",
			ctx:     canceled,
			locator: NewFixed(1, 2),
			wantErr: ErrTimeout,
		},
		{
			name:    "denied",
			ctx:     context.Background(),
			locator: Denied{},
			wantErr: ErrPermissionDenied,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.locator.CurrentPosition(tt.ctx)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("CurrentPosition() error = %v, want %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("CurrentPosition() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

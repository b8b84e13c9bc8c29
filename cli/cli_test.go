package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"widget/device"
	"widget/manager"
)

type fakeWidget struct {
	device manager.DeviceLocator
	report *manager.Report
	state  manager.ErrorState
}

func (f *fakeWidget) SetDevice(d manager.DeviceLocator) { f.device = d }

func (f *fakeWidget) Load(_ context.Context, r manager.Renderer) error {
	if f.report != nil {
		r.Show(*f.report)
		return nil
	}
	r.ShowError(f.state)
	return manager.ErrWeatherFetchFailed
}

func report() *manager.Report {
	return &manager.Report{
		Place:   "New York",
		Current: manager.CurrentConditions{TemperatureF: 72.4, HumidityPct: 48, Code: 1, WindSpeedMph: 3.2},
		Summary: "Mainly clear then Partly cloudy expected throughout the day.",
	}
}

func run(t *testing.T, w *fakeWidget, args ...string) (string, error) {
	t.Helper()
	cmd, err := New(w, device.Fixed{})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err = cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestRun_Fahrenheit(t *testing.T) {
	out, err := run(t, &fakeWidget{report: report()})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	for _, want := range []string{"New York", "72 °F", "Mainly clear then Partly cloudy"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRun_Celsius(t *testing.T) {
	out, err := run(t, &fakeWidget{report: report()}, "--unit", "c")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.Contains(out, "22 °C") {
		t.Errorf("output missing 22 °C:\n%s", out)
	}
}

func TestRun_HTML(t *testing.T) {
	out, err := run(t, &fakeWidget{report: report()}, "--format", "html")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.Contains(out, `<i class="wi wi-day-sunny"></i>`) {
		t.Errorf("html missing icon:\n%s", out)
	}
}

func TestRun_ErrorState(t *testing.T) {
	out, err := run(t, &fakeWidget{state: manager.StateLocationUnavailable}, "--unit", "c")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	for _, want := range []string{"Location unavailable", "Please enable location services."} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRun_DeviceSelection(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		check func(t *testing.T, d manager.DeviceLocator)
	}{
		{
			name: "no geolocation",
			args: []string{"--no-geolocation"},
			check: func(t *testing.T, d manager.DeviceLocator) {
				if d != nil {
					t.Errorf("device = %#v, want nil", d)
				}
			},
		},
		{
			name: "denied",
			args: []string{"--deny-location"},
			check: func(t *testing.T, d manager.DeviceLocator) {
				if _, ok := d.(device.Denied); !ok {
					t.Errorf("device = %#v, want Denied", d)
				}
			},
		},
		{
			name: "fixed position",
			args: []string{"--lat", "40.7", "--lon", "-74"},
			check: func(t *testing.T, d manager.DeviceLocator) {
				got, err := d.CurrentPosition(context.Background())
				if err != nil || got != (manager.Coordinates{Latitude: 40.7, Longitude: -74}) {
					t.Errorf("CurrentPosition() = %+v, %v", got, err)
				}
			},
		},
		{
			name: "fallback",
			check: func(t *testing.T, d manager.DeviceLocator) {
				if _, ok := d.(device.Fixed); !ok {
					t.Errorf("device = %#v, want fallback Fixed", d)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := &fakeWidget{report: report()}
			if _, err := run(t, w, tt.args...); err != nil {
				t.Fatalf("Execute() error = %v", err)
			}
			tt.check(t, w.device)
		})
	}
}

func TestRun_InvalidFlags(t *testing.T) {
	tests := [][]string{
		{"--lat", "40.7"},
		{"--unit", "k"},
		{"--format", "json"},
		{"--no-geolocation", "--deny-location"},
		{"extra"},
	}
	for _, args := range tests {
		if _, err := run(t, &fakeWidget{report: report()}, args...); err == nil {
			t.Errorf("Execute(%v) expected error", args)
		}
	}
}

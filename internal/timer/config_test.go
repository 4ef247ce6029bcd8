package timer

import (
	"testing"
	"time"
)

func TestDefaultConfigValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("DefaultConfig().Validate() error = %v", err)
	}
	if cfg.Duration != 10*time.Second {
		t.Errorf("Duration = %v, want 10s", cfg.Duration)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		duration time.Duration
		tick     time.Duration
		wantErr  bool
	}{
		{"defaults", 10 * time.Second, 10 * time.Millisecond, false},
		{"one ms tick", time.Minute, time.Millisecond, false},
		{"one ms duration", time.Millisecond, time.Millisecond, false},
		{"zero duration", 0, 10 * time.Millisecond, true},
		{"negative duration", -time.Second, 10 * time.Millisecond, true},
		{"sub ms tick", time.Second, time.Microsecond, true},
		{"one second tick", time.Second, time.Second, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Config{Duration: tt.duration, TickInterval: tt.tick}
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

package main

import "testing"

func TestCliFlags_DefaultRun(t *testing.T) {
	tests := []struct {
		name  string
		flags cliFlags
		want  bool
	}{
		{
			name:  "no flags at all",
			flags: cliFlags{},
			want:  true,
		},
		{
			name:  "prompt requested",
			flags: cliFlags{promptOut: true},
			want:  false,
		},
		{
			name:  "single source selected",
			flags: cliFlags{soilGrids: true},
			want:  false,
		},
		{
			name:  "all sources selected",
			flags: cliFlags{all: true},
			want:  false,
		},
		{
			name:  "grid without sources is still a default run",
			flags: cliFlags{grid: true, gridSize: 3},
			want:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.flags.defaultRun(); got != tt.want {
				t.Errorf("defaultRun() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCliFlags_Sources(t *testing.T) {
	all := cliFlags{all: true}
	if all.sources().None() {
		t.Error("--all should select every source")
	}

	one := cliFlags{weather: true}
	sources := one.sources()
	if !sources.Weather {
		t.Error("--weather should select the weather source")
	}
	if sources.SoilGrids || sources.OpenEPI || sources.OSM {
		t.Error("unselected sources should stay off")
	}
}

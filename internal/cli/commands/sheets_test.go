package commands

import (
	"testing"

	"github.com/r3fitness/fitctl/internal/cli/client"
)

func TestSheetsCommand_Structure(t *testing.T) {
	cmd := NewSheetsCmd()

	if cmd.Use != "sheets" {
		t.Errorf("expected Use to be 'sheets', got %s", cmd.Use)
	}

	want := map[string]bool{"ls": false, "create": false, "edit": false, "day-set": false}
	for _, sub := range cmd.Commands() {
		if _, ok := want[sub.Name()]; ok {
			want[sub.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("expected subcommand %q to exist", name)
		}
	}
}

func TestParseExerciseFlag(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  client.Exercise
	}{
		{
			"full entry",
			"Supino reto,3,12,40",
			client.Exercise{Name: "Supino reto", Sets: 3, Reps: 12, Weight: 40},
		},
		{
			"with notes",
			"Agachamento,4,10,60,pausa de 2s embaixo",
			client.Exercise{Name: "Agachamento", Sets: 4, Reps: 10, Weight: 60, Notes: "pausa de 2s embaixo"},
		},
		{
			"notes containing commas",
			"Remada,3,12,30,cotovelos junto ao corpo, sem balanço",
			client.Exercise{Name: "Remada", Sets: 3, Reps: 12, Weight: 30, Notes: "cotovelos junto ao corpo, sem balanço"},
		},
		{
			"name only",
			"Esteira",
			client.Exercise{Name: "Esteira"},
		},
		{
			"bodyweight, empty weight",
			"Barra fixa,3,8,",
			client.Exercise{Name: "Barra fixa", Sets: 3, Reps: 8},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseExerciseFlag(tt.value)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("parsed %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestParseExerciseFlag_Invalid(t *testing.T) {
	for _, value := range []string{"", " ,3,12,40", "Supino,three,12,40", "Supino,3,twelve,40", "Supino,3,12,heavy"} {
		if _, err := parseExerciseFlag(value); err == nil {
			t.Errorf("expected error for %q, got nil", value)
		}
	}
}

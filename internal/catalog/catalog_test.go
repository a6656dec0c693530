package catalog

import (
	"context"
	"errors"
	"reflect"
	"testing"
)

func TestMemoryPredict(t *testing.T) {
	m := NewMemory([]string{"Sintel", "Big Buck Bunny", "Tears of Steel", "Cosmos Laundromat", "sintel", "  ", "Elephants Dream"})

	tests := []struct {
		name  string
		query string
		limit int
		want  []string
	}{
		{"prefix before substring", "s", 10, []string{"Sintel", "Cosmos Laundromat", "Elephants Dream", "Tears of Steel"}},
		{"case insensitive", "BUCK", 10, []string{"Big Buck Bunny"}},
		{"limit", "e", 2, []string{"Elephants Dream", "Sintel"}},
		{"no match", "zzz", 10, nil},
		{"trims query", "  tears ", 10, []string{"Tears of Steel"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := m.Predict(context.Background(), tt.query, tt.limit)
			if err != nil {
				t.Fatalf("Predict: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("Predict(%q) = %v, want %v", tt.query, got, tt.want)
			}
		})
	}
}

func TestMemoryDedup(t *testing.T) {
	tests := []struct {
		name   string
		titles []string
		want   int
	}{
		{"exact", []string{"A", "A", " A ", ""}, 1},
		{"case", []string{"Sintel", "sintel", "SINTEL"}, 1},
		{"distinct", []string{"Sintel", "Sintel 2"}, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NewMemory(tt.titles).Len(); got != tt.want {
				t.Fatalf("Len() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestMemoryDedupKeepsFirstSpelling(t *testing.T) {
	m := NewMemory([]string{"Sintel", "sintel"})
	got, err := m.Predict(context.Background(), "sin", 5)
	if err != nil {
		t.Fatalf("Predict: %v", err)
	}
	if want := []string{"Sintel"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("Predict = %v, want %v", got, want)
	}
}

func TestMemoryDefaultLimit(t *testing.T) {
	m := NewMemory([]string{"a1", "a2", "a3", "a4", "a5", "a6", "a7"})
	got, err := m.Predict(context.Background(), "a", 0)
	if err != nil {
		t.Fatalf("Predict: %v", err)
	}
	if len(got) != DefaultLimit {
		t.Fatalf("len = %d, want %d", len(got), DefaultLimit)
	}
}

func TestMemoryEmptyQuery(t *testing.T) {
	m := NewMemory([]string{"Sintel"})
	if _, err := m.Predict(context.Background(), " ", 3); !errors.Is(err, ErrEmptyQuery) {
		t.Fatalf("Predict = %v, want ErrEmptyQuery", err)
	}
}

func TestMemoryCanceled(t *testing.T) {
	m := NewMemory([]string{"Sintel"})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := m.Predict(ctx, "s", 3); !errors.Is(err, context.Canceled) {
		t.Fatalf("Predict = %v, want context.Canceled", err)
	}
}

func TestEscapeLike(t *testing.T) {
	if got := escapeLike(`50%_off\`); got != `50\%\_off\\` {
		t.Fatalf("escapeLike = %q", got)
	}
}

package status

import "testing"

func TestApply_StacksAccumulate(t *testing.T) {
	var l Ledger
	l = l.Apply(Strength, 2, Intensity)
	l = l.Apply(Strength, 2, Intensity)

	if len(l) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(l))
	}
	if l[0].Stacks != 4 {
		t.Errorf("expected 4 stacks, got %d", l[0].Stacks)
	}
}

func TestApply_KeepsExistingStackType(t *testing.T) {
	l := Ledger{{Type: Vulnerable, Stacks: 1, StackType: Duration}}
	l = l.Apply(Vulnerable, 2, Intensity)

	e, ok := l.Find(Vulnerable)
	if !ok {
		t.Fatal("vulnerable missing")
	}
	if e.StackType != Duration {
		t.Errorf("expected stack type %q, got %q", Duration, e.StackType)
	}
	if e.Stacks != 3 {
		t.Errorf("expected 3 stacks, got %d", e.Stacks)
	}
}

func TestApply_DoesNotMutateReceiver(t *testing.T) {
	orig := Ledger{{Type: Weak, Stacks: 1, StackType: Duration}}
	_ = orig.Apply(Weak, 5, Duration)
	_ = orig.Apply(Strength, 1, Intensity)

	if len(orig) != 1 || orig[0].Stacks != 1 {
		t.Errorf("receiver modified: %+v", orig)
	}
}

func TestRemove(t *testing.T) {
	l := Ledger{
		{Type: Weak, Stacks: 1, StackType: Duration},
		{Type: Strength, Stacks: 3, StackType: Intensity},
	}
	l = l.Remove(Weak)

	if l.Has(Weak) {
		t.Error("weak should be removed")
	}
	if l.Stacks(Strength) != 3 {
		t.Errorf("strength stacks = %d, want 3", l.Stacks(Strength))
	}
}

func TestTickTurnStart(t *testing.T) {
	tests := []struct {
		name     string
		in       Ledger
		want     Ledger
		wantHeal int
	}{
		{
			name: "duration decrements",
			in:   Ledger{{Type: Vulnerable, Stacks: 2, StackType: Duration}},
			want: Ledger{{Type: Vulnerable, Stacks: 1, StackType: Duration}},
		},
		{
			name: "duration expires",
			in:   Ledger{{Type: Weak, Stacks: 1, StackType: Duration}},
			want: Ledger{},
		},
		{
			name: "zero duration removed",
			in:   Ledger{{Type: Frail, Stacks: 0, StackType: Duration}},
			want: Ledger{},
		},
		{
			name: "intensity persists",
			in:   Ledger{{Type: Strength, Stacks: 2, StackType: Intensity}},
			want: Ledger{{Type: Strength, Stacks: 2, StackType: Intensity}},
		},
		{
			name: "intensity at zero persists",
			in:   Ledger{{Type: Strength, Stacks: 0, StackType: Intensity}},
			want: Ledger{{Type: Strength, Stacks: 0, StackType: Intensity}},
		},
		{
			name:     "regen heals before its own decrement",
			in:       Ledger{{Type: Regen, Stacks: 3, StackType: Duration}},
			want:     Ledger{{Type: Regen, Stacks: 2, StackType: Duration}},
			wantHeal: 3,
		},
		{
			name:     "last regen stack still heals",
			in:       Ledger{{Type: Regen, Stacks: 1, StackType: Duration}},
			want:     Ledger{},
			wantHeal: 1,
		},
		{
			name: "mixed",
			in: Ledger{
				{Type: Strength, Stacks: 1, StackType: Intensity},
				{Type: Vulnerable, Stacks: 1, StackType: Duration},
				{Type: Barricade, Stacks: 1, StackType: None},
				{Type: Weak, Stacks: 3, StackType: Duration},
			},
			want: Ledger{
				{Type: Strength, Stacks: 1, StackType: Intensity},
				{Type: Barricade, Stacks: 1, StackType: None},
				{Type: Weak, Stacks: 2, StackType: Duration},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ts := tt.in.TickTurnStart()
			if ts.Heal != tt.wantHeal {
				t.Errorf("heal = %d, want %d", ts.Heal, tt.wantHeal)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("got %+v, want %+v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("entry %d = %+v, want %+v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestDescription(t *testing.T) {
	if got := (Effect{Type: Weak, Stacks: 2, StackType: Duration}).Description(); got != "weak: 2 turns" {
		t.Errorf("got %q", got)
	}
	if got := (Effect{Type: Strength, Stacks: 3, StackType: Intensity}).Description(); got != "strength: +3" {
		t.Errorf("got %q", got)
	}
}

package model

// Phase is the combat state machine position.
//
//	player_turn → player_action → enemy_turn → (player_turn | combat_end)
type Phase int8

const (
	PhasePlayerTurn Phase = iota
	PhasePlayerAction
	PhaseEnemyTurn
	PhaseCombatEnd
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhasePlayerTurn:
		return "player_turn"
	case PhasePlayerAction:
		return "player_action"
	case PhaseEnemyTurn:
		return "enemy_turn"
	case PhaseCombatEnd:
		return "combat_end"
	default:
		return "unknown"
	}
}

// Side identifies a combat participant side.
type Side string

const (
	SideNone   Side = ""
	SidePlayer Side = "player"
	SideEnemy  Side = "enemy"
)

// ActionKind classifies combat history entries.
type ActionKind string

const (
	ActionCardPlay      ActionKind = "card_play"
	ActionPotionUse     ActionKind = "potion_use"
	ActionEndTurn       ActionKind = "end_turn"
	ActionEnemyAction   ActionKind = "enemy_action"
	ActionStatusApplied ActionKind = "status_applied"
	ActionDamageDealt   ActionKind = "damage_dealt"
)

// CombatAction is one entry of the combat log.
type CombatAction struct {
	Kind   ActionKind
	Actor  Side
	Turn   int
	Source string
	Target string
	Value  int
	Detail string
}

// Combat is the ephemeral per-encounter session. Player is a working copy of
// the run's player; it is merged back once when the combat ends.
type Combat struct {
	ID           string
	Enemies      []Enemy
	Player       Player
	Phase        Phase
	Energy       int
	Turn         int
	Round        int
	IsPlayerTurn bool
	History      []CombatAction
}

// Clone returns a deep copy.
func (c Combat) Clone() Combat {
	out := c
	if c.Enemies != nil {
		out.Enemies = make([]Enemy, len(c.Enemies))
		for i, e := range c.Enemies {
			out.Enemies[i] = e.Clone()
		}
	}
	out.Player = c.Player.Clone()
	if c.History != nil {
		out.History = make([]CombatAction, len(c.History))
		copy(out.History, c.History)
	}
	return out
}

// EnemyIndex returns the index of the enemy with id, or -1.
func (c Combat) EnemyIndex(id string) int {
	for i := range c.Enemies {
		if c.Enemies[i].ID == id {
			return i
		}
	}
	return -1
}

// LivingEnemies returns the indices of enemies above 0 HP, in list order.
func (c Combat) LivingEnemies() []int {
	var out []int
	for i := range c.Enemies {
		if !c.Enemies[i].IsDead() {
			out = append(out, i)
		}
	}
	return out
}

// AllEnemiesDead reports whether every enemy is at or below 0 HP.
func (c Combat) AllEnemiesDead() bool {
	for i := range c.Enemies {
		if !c.Enemies[i].IsDead() {
			return false
		}
	}
	return true
}

package domain

import "time"

// Profile holds the user's goals. There is exactly one per deployment.
type Profile struct {
	CalorieBudget float64   `json:"calorieBudget" db:"calorie_budget"`
	ProteinTarget float64   `json:"proteinTarget" db:"protein_target"`
	UpdatedAt     time.Time `json:"updatedAt" db:"updated_at"`
}

// ProfilePatch carries the fields of a partial profile update.
type ProfilePatch struct {
	CalorieBudget *float64
	ProteinTarget *float64
}

func (p *Profile) Apply(patch ProfilePatch) {
	if patch.CalorieBudget != nil {
		p.CalorieBudget = Amount(*patch.CalorieBudget)
	}
	if patch.ProteinTarget != nil {
		p.ProteinTarget = Amount(*patch.ProteinTarget)
	}
	p.UpdatedAt = time.Now().UTC()
}

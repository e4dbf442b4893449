package domain

type Skill struct {
	ID             uint    `gorm:"primaryKey" json:"id"`
	PessoaID       uint    `gorm:"not null;index" json:"pessoa_id"`
	NomeHabilidade string  `gorm:"size:100;not null" json:"nome_habilidade"`
	Nivel          *string `gorm:"size:50" json:"nivel"`
	Tipo           *string `gorm:"size:50" json:"tipo"`
}

func (Skill) TableName() string { return SkillKind.Table }

type SkillInput struct {
	NomeHabilidade string  `json:"nome_habilidade" validate:"required"`
	Nivel          *string `json:"nivel"`
	Tipo           *string `json:"tipo"`
}

func (in SkillInput) Record(ownerID uint) Skill {
	return Skill{
		PessoaID:       ownerID,
		NomeHabilidade: in.NomeHabilidade,
		Nivel:          in.Nivel,
		Tipo:           in.Tipo,
	}
}

type SkillPatch struct {
	NomeHabilidade *string `json:"nome_habilidade"`
	Nivel          *string `json:"nivel"`
	Tipo           *string `json:"tipo"`
}

func (p SkillPatch) Columns() map[string]any {
	cols := map[string]any{}
	put(cols, "nome_habilidade", p.NomeHabilidade)
	put(cols, "nivel", p.Nivel)
	put(cols, "tipo", p.Tipo)
	return cols
}

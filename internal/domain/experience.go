package domain

// Experience 工作经历；DataFim 为空表示当前在职
type Experience struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	PessoaID    uint    `gorm:"not null;index" json:"pessoa_id"`
	Cargo       string  `gorm:"size:150;not null" json:"cargo"`
	Empresa     string  `gorm:"size:150;not null" json:"empresa"`
	Localizacao *string `gorm:"size:150" json:"localizacao"`
	DataInicio  Date    `gorm:"type:date;not null" json:"data_inicio"`
	DataFim     *Date   `gorm:"type:date" json:"data_fim"`
	Descricao   *string `gorm:"type:text" json:"descricao"`
}

func (Experience) TableName() string { return ExperienceKind.Table }

// Current 是否仍在职
func (e Experience) Current() bool { return e.DataFim == nil || e.DataFim.IsZero() }

type ExperienceInput struct {
	Cargo       string  `json:"cargo" validate:"required"`
	Empresa     string  `json:"empresa" validate:"required"`
	Localizacao *string `json:"localizacao"`
	DataInicio  Date    `json:"data_inicio" validate:"required"`
	DataFim     *Date   `json:"data_fim"`
	Descricao   *string `json:"descricao"`
}

func (in ExperienceInput) Record(ownerID uint) Experience {
	return Experience{
		PessoaID:    ownerID,
		Cargo:       in.Cargo,
		Empresa:     in.Empresa,
		Localizacao: in.Localizacao,
		DataInicio:  in.DataInicio,
		DataFim:     nonZero(in.DataFim),
		Descricao:   in.Descricao,
	}
}

type ExperiencePatch struct {
	Cargo       *string `json:"cargo"`
	Empresa     *string `json:"empresa"`
	Localizacao *string `json:"localizacao"`
	DataInicio  *Date   `json:"data_inicio"`
	DataFim     *Date   `json:"data_fim"`
	Descricao   *string `json:"descricao"`
}

func (p ExperiencePatch) Columns() map[string]any {
	cols := map[string]any{}
	put(cols, "cargo", p.Cargo)
	put(cols, "empresa", p.Empresa)
	put(cols, "localizacao", p.Localizacao)
	putDate(cols, "data_inicio", p.DataInicio)
	putDate(cols, "data_fim", p.DataFim)
	put(cols, "descricao", p.Descricao)
	return cols
}

func nonZero(d *Date) *Date {
	if d == nil || d.IsZero() {
		return nil
	}
	return d
}

package domain

type Education struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	PessoaID    uint    `gorm:"not null;index" json:"pessoa_id"`
	Instituicao string  `gorm:"size:150;not null" json:"instituicao"`
	Curso       string  `gorm:"size:150;not null" json:"curso"`
	Grau        *string `gorm:"size:100" json:"grau"`
	DataInicio  Date    `gorm:"type:date;not null" json:"data_inicio"`
	DataFim     *Date   `gorm:"type:date" json:"data_fim"`
	Descricao   *string `gorm:"type:text" json:"descricao"`
}

func (Education) TableName() string { return EducationKind.Table }

type EducationInput struct {
	Instituicao string  `json:"instituicao" validate:"required"`
	Curso       string  `json:"curso" validate:"required"`
	Grau        *string `json:"grau"`
	DataInicio  Date    `json:"data_inicio" validate:"required"`
	DataFim     *Date   `json:"data_fim"`
	Descricao   *string `json:"descricao"`
}

func (in EducationInput) Record(ownerID uint) Education {
	return Education{
		PessoaID:    ownerID,
		Instituicao: in.Instituicao,
		Curso:       in.Curso,
		Grau:        in.Grau,
		DataInicio:  in.DataInicio,
		DataFim:     nonZero(in.DataFim),
		Descricao:   in.Descricao,
	}
}

type EducationPatch struct {
	Instituicao *string `json:"instituicao"`
	Curso       *string `json:"curso"`
	Grau        *string `json:"grau"`
	DataInicio  *Date   `json:"data_inicio"`
	DataFim     *Date   `json:"data_fim"`
	Descricao   *string `json:"descricao"`
}

func (p EducationPatch) Columns() map[string]any {
	cols := map[string]any{}
	put(cols, "instituicao", p.Instituicao)
	put(cols, "curso", p.Curso)
	put(cols, "grau", p.Grau)
	putDate(cols, "data_inicio", p.DataInicio)
	putDate(cols, "data_fim", p.DataFim)
	put(cols, "descricao", p.Descricao)
	return cols
}

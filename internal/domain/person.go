package domain

// Person 简历主体
type Person struct {
	ID           uint    `gorm:"primaryKey" json:"id"`
	Nome         string  `gorm:"size:100;not null" json:"nome"`
	Sobrenome    string  `gorm:"size:100;not null" json:"sobrenome"`
	Email        string  `gorm:"size:191;uniqueIndex;not null" json:"email"`
	Telefone     *string `gorm:"size:30" json:"telefone"`
	Cidade       *string `gorm:"size:100" json:"cidade"`
	Estado       *string `gorm:"size:100" json:"estado"`
	Pais         *string `gorm:"size:100" json:"pais"`
	LinkLinkedin *string `gorm:"column:link_linkedin;size:255" json:"link_linkedin"`
	LinkGithub   *string `gorm:"column:link_github;size:255" json:"link_github"`
	Resumo       *string `gorm:"type:text" json:"resumo"`
}

func (Person) TableName() string { return PersonKind.Table }

type PersonInput struct {
	Nome         string  `json:"nome" validate:"required"`
	Sobrenome    string  `json:"sobrenome" validate:"required"`
	Email        string  `json:"email" validate:"required"`
	Telefone     *string `json:"telefone"`
	Cidade       *string `json:"cidade"`
	Estado       *string `json:"estado"`
	Pais         *string `json:"pais"`
	LinkLinkedin *string `json:"link_linkedin"`
	LinkGithub   *string `json:"link_github"`
	Resumo       *string `json:"resumo"`
}

// Record Person 没有归属，ownerID 忽略
func (in PersonInput) Record(uint) Person {
	return Person{
		Nome:         in.Nome,
		Sobrenome:    in.Sobrenome,
		Email:        in.Email,
		Telefone:     in.Telefone,
		Cidade:       in.Cidade,
		Estado:       in.Estado,
		Pais:         in.Pais,
		LinkLinkedin: in.LinkLinkedin,
		LinkGithub:   in.LinkGithub,
		Resumo:       in.Resumo,
	}
}

type PersonPatch struct {
	Nome         *string `json:"nome"`
	Sobrenome    *string `json:"sobrenome"`
	Email        *string `json:"email"`
	Telefone     *string `json:"telefone"`
	Cidade       *string `json:"cidade"`
	Estado       *string `json:"estado"`
	Pais         *string `json:"pais"`
	LinkLinkedin *string `json:"link_linkedin"`
	LinkGithub   *string `json:"link_github"`
	Resumo       *string `json:"resumo"`
}

func (p PersonPatch) Columns() map[string]any {
	cols := map[string]any{}
	put(cols, "nome", p.Nome)
	put(cols, "sobrenome", p.Sobrenome)
	put(cols, "email", p.Email)
	put(cols, "telefone", p.Telefone)
	put(cols, "cidade", p.Cidade)
	put(cols, "estado", p.Estado)
	put(cols, "pais", p.Pais)
	put(cols, "link_linkedin", p.LinkLinkedin)
	put(cols, "link_github", p.LinkGithub)
	put(cols, "resumo", p.Resumo)
	return cols
}

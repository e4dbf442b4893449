package service

import (
	"gorm.io/gorm"

	"curriculo-api/internal/domain"
	"curriculo-api/internal/repo"
)

type (
	People      = Resource[domain.Person, domain.PersonInput, domain.PersonPatch]
	Experiences = Resource[domain.Experience, domain.ExperienceInput, domain.ExperiencePatch]
	Educations  = Resource[domain.Education, domain.EducationInput, domain.EducationPatch]
	Skills      = Resource[domain.Skill, domain.SkillInput, domain.SkillPatch]
)

// Set 四种实体的服务集合，共享同一个数据库句柄
type Set struct {
	People      *People
	Experiences *Experiences
	Education   *Educations
	Skills      *Skills
}

func NewSet(db *gorm.DB, opts Options) *Set {
	people := repo.New[domain.Person](db, domain.PersonKind)
	return &Set{
		People: NewResource[domain.Person, domain.PersonInput, domain.PersonPatch](
			people, nil, opts),
		Experiences: NewResource[domain.Experience, domain.ExperienceInput, domain.ExperiencePatch](
			repo.New[domain.Experience](db, domain.ExperienceKind), people, opts),
		Education: NewResource[domain.Education, domain.EducationInput, domain.EducationPatch](
			repo.New[domain.Education](db, domain.EducationKind), people, opts),
		Skills: NewResource[domain.Skill, domain.SkillInput, domain.SkillPatch](
			repo.New[domain.Skill](db, domain.SkillKind), people, opts),
	}
}

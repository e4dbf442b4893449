package domain

// OwnerColumn 子记录指向 Person 的外键列
const OwnerColumn = "pessoa_id"

// Kind 实体类型描述，通用 CRUD 组件按它参数化
type Kind struct {
	Name       string   // 路由段，同时作为缓存命名空间
	Table      string   // 表名
	Label      string   // 错误信息中的名称
	OrderBy    string   // 列表排序
	Owned      bool     // 是否隶属于某个 Person
	Unique     string   // 唯一约束列，冲突时提示
	Dependents []string // 删除本记录时一并删除的子表（按 OwnerColumn 关联）
}

var (
	PersonKind = Kind{
		Name:       "pessoas",
		Table:      "pessoas",
		Label:      "person",
		OrderBy:    "id ASC",
		Unique:     "email",
		Dependents: []string{"experiencias", "educacao", "habilidades"},
	}
	ExperienceKind = Kind{
		Name:    "experiencias",
		Table:   "experiencias",
		Label:   "experience",
		OrderBy: "data_inicio DESC, id DESC",
		Owned:   true,
	}
	EducationKind = Kind{
		Name:    "educacao",
		Table:   "educacao",
		Label:   "education",
		OrderBy: "data_inicio DESC, id DESC",
		Owned:   true,
	}
	SkillKind = Kind{
		Name:    "habilidades",
		Table:   "habilidades",
		Label:   "skill",
		OrderBy: "nome_habilidade ASC, id ASC",
		Owned:   true,
	}
)

// Models 参与自动迁移的全部模型
func Models() []any {
	return []any{&Person{}, &Experience{}, &Education{}, &Skill{}}
}

// put 仅在字段被显式提供（非 nil）时写入，实现 COALESCE 语义
func put[V any](cols map[string]any, col string, v *V) {
	if v != nil {
		cols[col] = *v
	}
}

// putDate 空日期等同于未提供
func putDate(cols map[string]any, col string, v *Date) {
	if v != nil && !v.IsZero() {
		cols[col] = *v
	}
}

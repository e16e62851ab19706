package answers

// Record is the result of one complete aggregation pass.
type Record struct {
	ProjectName      string `yaml:"project_name" json:"project_name"`
	MainPackage      string `yaml:"main_package" json:"main_package"`
	AuthorName       string `yaml:"author_name" json:"author_name"`
	AuthorEmail      string `yaml:"author_email" json:"author_email"`
	ShortDescription string `yaml:"short_description" json:"short_description"`
	IncludeTemplates bool   `yaml:"include_templates" json:"include_templates"`
}

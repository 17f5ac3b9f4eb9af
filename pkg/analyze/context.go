package analyze

// ProjectType is the primary runtime ecosystem detected for a project.
type ProjectType string

const (
	TypeUnknown ProjectType = "unknown"
	TypeNode    ProjectType = "node"
	TypePython  ProjectType = "python"
	TypeJava    ProjectType = "java"
	TypeGo      ProjectType = "go"
	TypeDotnet  ProjectType = "dotnet"
)

// Service is a container-definition file plus its containing directory,
// registered as one deployable unit.
type Service struct {
	Kind       string `json:"type"`
	Path       string `json:"path"`
	Dockerfile string `json:"dockerfile"`
}

// ProjectContext is the normalized description of a project produced by a
// single Analyze call. It is populated stage by stage and returned as a
// snapshot; nothing in it is shared across invocations.
type ProjectContext struct {
	ProjectType     ProjectType        `json:"project_type"`
	Frameworks      []string           `json:"frameworks"`
	Services        map[string]Service `json:"services"`
	EnvVars         map[string]string  `json:"env_vars"`
	EntryPoints     []string           `json:"entry_points"`
	Ports           []int              `json:"ports"`
	DetectedFiles   []string           `json:"detected_files"`
	ServicePatterns []string           `json:"service_patterns"`
}

// NewProjectContext returns an empty context ready to be populated.
func NewProjectContext() *ProjectContext {
	return &ProjectContext{
		ProjectType:     TypeUnknown,
		Frameworks:      make([]string, 0),
		Services:        make(map[string]Service),
		EnvVars:         make(map[string]string),
		EntryPoints:     make([]string, 0),
		Ports:           make([]int, 0),
		DetectedFiles:   make([]string, 0),
		ServicePatterns: make([]string, 0),
	}
}

// addFramework appends a framework tag unless it is already present.
func (c *ProjectContext) addFramework(tag string) {
	c.Frameworks = appendUnique(c.Frameworks, tag)
}

func appendUnique(items []string, item string) []string {
	for _, existing := range items {
		if existing == item {
			return items
		}
	}
	return append(items, item)
}

package solution

import (
	"github.com/beevik/etree"
	"go.trai.ch/purge/internal/core/domain"
	"go.trai.ch/zerr"
)

// ParseSLNX reads the XML solution format. Every Project element with a project file Path
// contributes, wherever it is nested inside Folder elements, in document order.
func ParseSLNX(data []byte) ([]string, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, zerr.Wrap(domain.ErrSolutionParseFailed, err.Error())
	}

	root := doc.Root()
	if root == nil || root.Tag != "Solution" {
		return nil, zerr.Wrap(domain.ErrSolutionParseFailed, "missing Solution root element")
	}

	var projects []string
	collectProjects(root, &projects)
	return projects, nil
}

func collectProjects(el *etree.Element, projects *[]string) {
	for _, child := range el.ChildElements() {
		if child.Tag == "Project" {
			if path := child.SelectAttrValue("Path", ""); domain.IsProjectFile(path) {
				*projects = append(*projects, path)
			}
			continue
		}
		collectProjects(child, projects)
	}
}

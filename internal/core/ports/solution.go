package ports

// SolutionReader expands a solution file into its member projects.
//
//go:generate go run go.uber.org/mock/mockgen -source=solution.go -destination=mocks/mock_solution.go -package=mocks
type SolutionReader interface {
	// Parse returns the absolute paths of the projects listed in the solution.
	// It returns domain.ErrUnsupportedSolutionFormat when no parser handles the extension.
	Parse(solutionPath string) ([]string, error)
}

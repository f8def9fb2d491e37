package discovery_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/purge/internal/adapters/fs"
	"go.trai.ch/purge/internal/adapters/solution"
	"go.trai.ch/purge/internal/core/domain"
	"go.trai.ch/purge/internal/core/ports/mocks"
	"go.trai.ch/purge/internal/engine/discovery"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

func writeTree(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		path := filepath.Join(root, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), domain.DirPerm))
		require.NoError(t, os.WriteFile(path, []byte(content), domain.FilePerm))
	}
}

// tempRoot returns a temp dir with symlinks resolved so paths compare equal.
func tempRoot(t *testing.T) string {
	t.Helper()
	root, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)
	return root
}

func paths(d *domain.Discovery) []string {
	out := make([]string, 0, len(d.Projects))
	for _, p := range d.Projects {
		out = append(out, p.Path)
	}
	return out
}

const appSolution = `<Solution>
  <Project Path="src/App/App.csproj" />
  <Project Path="src/Lib/Lib.csproj" />
</Solution>`

func TestDiscover_DeduplicatesSolutionMembers(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)

	root := tempRoot(t)
	writeTree(t, root, map[string]string{
		"App.slnx":           appSolution,
		"src/App/App.csproj": "<Project />",
		"src/Lib/Lib.csproj": "<Project />",
	})

	d := discovery.New(fs.NewWalker(), solution.NewReader(), log)
	got, err := d.Discover(context.Background(), root, true, nil)
	require.NoError(t, err)

	assert.Equal(t, []string{
		filepath.Join(root, "src", "App", "App.csproj"),
		filepath.Join(root, "src", "Lib", "Lib.csproj"),
	}, paths(got))
	assert.Empty(t, got.Skipped)
}

func TestDiscover_TopLevelOnlyWithoutRecurse(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)

	root := tempRoot(t)
	writeTree(t, root, map[string]string{
		"Tool.fsproj":       "<Project />",
		"nested/A.csproj":   "<Project />",
		"nested/B.vbproj":   "<Project />",
		"notes/README.md":   "# notes",
		"web/client.esproj": "<Project />",
	})

	d := discovery.New(fs.NewWalker(), solution.NewReader(), log)
	got, err := d.Discover(context.Background(), root, false, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(root, "Tool.fsproj")}, paths(got))

	got, err = d.Discover(context.Background(), root, true, []string{"web"})
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(root, "Tool.fsproj"),
		filepath.Join(root, "nested", "A.csproj"),
		filepath.Join(root, "nested", "B.vbproj"),
	}, paths(got))
}

func TestDiscover_ExplicitProject(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Warn(gomock.Any())

	root := tempRoot(t)
	writeTree(t, root, map[string]string{"App.csproj": "<Project />", "sub/Other.csproj": "<Project />"})

	d := discovery.New(fs.NewWalker(), solution.NewReader(), log)
	got, err := d.Discover(context.Background(), filepath.Join(root, "App.csproj"), true, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(root, "App.csproj")}, paths(got))
}

func TestDiscover_ExplicitSolution(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	reader := mocks.NewMockSolutionReader(ctrl)

	root := tempRoot(t)
	writeTree(t, root, map[string]string{"B/B.csproj": "<Project />", "A/A.csproj": "<Project />"})
	sln := filepath.Join(root, "App.sln")
	writeTree(t, root, map[string]string{"App.sln": "placeholder"})

	reader.EXPECT().Parse(sln).Return([]string{
		filepath.Join(root, "B", "B.csproj"),
		filepath.Join(root, "A", "A.csproj"),
		filepath.Join(root, "B", "B.csproj"),
	}, nil)

	d := discovery.New(fs.NewWalker(), reader, log)
	got, err := d.Discover(context.Background(), sln, false, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(root, "A", "A.csproj"),
		filepath.Join(root, "B", "B.csproj"),
	}, paths(got))
}

func TestDiscover_ExplicitBrokenSolutionIsFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)

	root := tempRoot(t)
	writeTree(t, root, map[string]string{"Broken.sln": "garbage"})

	d := discovery.New(fs.NewWalker(), solution.NewReader(), log)
	_, err := d.Discover(context.Background(), filepath.Join(root, "Broken.sln"), false, nil)
	require.ErrorIs(t, err, domain.ErrSolutionParseFailed)
}

func TestDiscover_IncidentalBrokenSolutionIsSkipped(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	reader := mocks.NewMockSolutionReader(ctrl)

	root := tempRoot(t)
	writeTree(t, root, map[string]string{
		"Broken.sln":         "garbage",
		"src/App/App.csproj": "<Project />",
	})

	parseErr := zerr.Wrap(domain.ErrSolutionParseFailed, "missing solution file header")
	reader.EXPECT().Parse(filepath.Join(root, "Broken.sln")).Return(nil, parseErr)

	d := discovery.New(fs.NewWalker(), reader, log)
	got, err := d.Discover(context.Background(), root, true, nil)
	require.NoError(t, err)

	assert.Equal(t, []string{filepath.Join(root, "src", "App", "App.csproj")}, paths(got))
	require.Len(t, got.Skipped, 1)
	assert.Equal(t, filepath.Join(root, "Broken.sln"), got.Skipped[0].Path)
	assert.ErrorIs(t, got.Skipped[0].Err, domain.ErrSolutionParseFailed)
}

func TestDiscover_MissingSolutionMemberIsWarned(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Warn(gomock.Any())

	root := tempRoot(t)
	writeTree(t, root, map[string]string{
		"App.slnx":           appSolution,
		"src/App/App.csproj": "<Project />",
	})

	d := discovery.New(fs.NewWalker(), solution.NewReader(), log)
	got, err := d.Discover(context.Background(), filepath.Join(root, "App.slnx"), false, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(root, "src", "App", "App.csproj")}, paths(got))
}

func TestDiscover_Errors(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)

	root := tempRoot(t)
	writeTree(t, root, map[string]string{"README.md": "# readme"})

	d := discovery.New(fs.NewWalker(), solution.NewReader(), log)

	_, err := d.Discover(context.Background(), filepath.Join(root, "missing"), false, nil)
	require.ErrorIs(t, err, domain.ErrTargetNotFound)

	_, err = d.Discover(context.Background(), filepath.Join(root, "README.md"), false, nil)
	require.ErrorIs(t, err, domain.ErrUnsupportedTarget)
}

func TestDiscover_Cancelled(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)

	root := tempRoot(t)
	writeTree(t, root, map[string]string{"A/A.csproj": "<Project />"})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	d := discovery.New(fs.NewWalker(), solution.NewReader(), log)
	_, err := d.Discover(ctx, root, true, nil)
	require.ErrorIs(t, err, context.Canceled)
}

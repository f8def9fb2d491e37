package solution_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/purge/internal/adapters/solution"
	"go.trai.ch/purge/internal/core/domain"
)

const classicSolution = "\uFEFF\r\n" +
	"Microsoft Visual Studio Solution File, Format Version 12.00\r\n" +
	"# Visual Studio Version 17\r\n" +
	`Project("{FAE04EC0-301F-11D3-BF4B-00C04F79EFBC}") = "App", "src\App\App.csproj", "{11111111-1111-1111-1111-111111111111}"` + "\r\n" +
	"EndProject\r\n" +
	`Project("{2150E333-8FDC-42A3-9474-1A3956D46DE8}") = "tests", "tests", "{22222222-2222-2222-2222-222222222222}"` + "\r\n" +
	"EndProject\r\n" +
	`Project("{F2A71F9B-5D33-465A-A702-920D77279786}") = "App.Tests", "tests\App.Tests\App.Tests.fsproj", "{33333333-3333-3333-3333-333333333333}"` + "\r\n" +
	"EndProject\r\n" +
	`Project("{54A90642-561A-4BB1-A94E-469ADEE60C69}") = "web", "web\web.esproj", "{44444444-4444-4444-4444-444444444444}"` + "\r\n" +
	"EndProject\r\n" +
	`Project("{FAE04EC0-301F-11D3-BF4B-00C04F79EFBC}") = "App", "src\App\App.csproj", "{11111111-1111-1111-1111-111111111111}"` + "\r\n" +
	"EndProject\r\n" +
	"Global\r\nEndGlobal\r\n"

const xmlSolution = `<Solution>
  <Folder Name="/src/">
    <Project Path="src/App/App.csproj" />
  </Folder>
  <Folder Name="/tests/">
    <Project Path="tests\App.Tests\App.Tests.csproj" Type="Classic C#" />
    <Project Path="tests/Db/Db.sqlproj" />
  </Folder>
  <Project Path="tools/Gen/Gen.vbproj" />
</Solution>
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), domain.FilePerm))
	return path
}

func TestReader_ParseSLN(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "App.sln", classicSolution)

	projects, err := solution.NewReader().Parse(path)
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "src", "App", "App.csproj"),
		filepath.Join(dir, "tests", "App.Tests", "App.Tests.fsproj"),
		filepath.Join(dir, "web", "web.esproj"),
	}, projects)
}

func TestReader_ParseSLNX(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "App.slnx", xmlSolution)

	projects, err := solution.NewReader().Parse(path)
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "src", "App", "App.csproj"),
		filepath.Join(dir, "tests", "App.Tests", "App.Tests.csproj"),
		filepath.Join(dir, "tools", "Gen", "Gen.vbproj"),
	}, projects)
}

func TestParseSLNX_SkipsNonProjectMembers(t *testing.T) {
	projects, err := solution.ParseSLNX([]byte(`<Solution>
  <Project Path="native/Core.vcxproj" />
  <Folder Name="/db/">
    <Project Path="db/Db.sqlproj" />
    <Project Path="db/Migrations/Migrations.fsproj" />
  </Folder>
  <Project Path="" />
</Solution>`))
	require.NoError(t, err)
	assert.Equal(t, []string{"db/Migrations/Migrations.fsproj"}, projects)
}

func TestReader_ExtensionIsCaseInsensitive(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "App.SLNX", xmlSolution)

	projects, err := solution.NewReader().Parse(path)
	require.NoError(t, err)
	assert.Len(t, projects, 3)
}

func TestReader_UnsupportedFormat(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "App.slnf", `{"solution": {}}`)

	_, err := solution.NewReader().Parse(path)
	require.ErrorIs(t, err, domain.ErrUnsupportedSolutionFormat)
}

func TestReader_Register(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "App.slnf", "ignored")

	r := solution.NewReader()
	r.Register(".slnf", func(_ []byte) ([]string, error) {
		return []string{"src/App/App.csproj"}, nil
	})

	projects, err := r.Parse(path)
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "src", "App", "App.csproj")}, projects)
}

func TestReader_ParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{name: "sln without header", file: "Broken.sln", content: "this is not a solution"},
		{name: "slnx that is not xml", file: "Broken.slnx", content: "this is not xml"},
		{name: "slnx with another root", file: "Other.slnx", content: "<Project Sdk=\"Microsoft.NET.Sdk\" />"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, t.TempDir(), tt.file, tt.content)

			_, err := solution.NewReader().Parse(path)
			require.ErrorIs(t, err, domain.ErrSolutionParseFailed)
		})
	}
}

func TestReader_MissingFile(t *testing.T) {
	_, err := solution.NewReader().Parse(filepath.Join(t.TempDir(), "Missing.sln"))
	require.ErrorIs(t, err, domain.ErrSolutionParseFailed)
}

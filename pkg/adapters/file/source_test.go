package file_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/aretw0/parley/pkg/adapters/file"
	"github.com/aretw0/parley/pkg/domain"
	contract "github.com/aretw0/parley/pkg/ports/tests"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestFileSource_Contract(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "pairs", "en.xml"), "<pairs><greet>Hello</greet></pairs>")
	writeFile(t, filepath.Join(root, "trees", "guard.xml"), "<dialogs/>")
	writeFile(t, filepath.Join(root, "trees", "shop.yaml"), "greet:\n  type: showdialog\n")
	writeFile(t, filepath.Join(root, "trees", "notes.txt"), "ignored")

	contract.DocumentSourceContractTest(t, file.New(root), map[domain.DocumentRef][]byte{
		{Kind: domain.DocumentPairs, Name: "en"}:   []byte("<pairs><greet>Hello</greet></pairs>"),
		{Kind: domain.DocumentTree, Name: "guard"}: []byte("<dialogs/>"),
		{Kind: domain.DocumentTree, Name: "shop"}:  []byte("greet:\n  type: showdialog\n"),
	})
}

func TestFileSource_CustomSubdirs(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "Dialogs", "Trees", "intro.yml"), "a: b")

	src := file.New(root, file.WithSubdirs(filepath.Join("Dialogs", "Pairs"), filepath.Join("Dialogs", "Trees")))

	data, err := src.Get(context.Background(), domain.DocumentTree, "intro")
	require.NoError(t, err)
	assert.Equal(t, "a: b", string(data))

	names, err := src.List(context.Background(), domain.DocumentPairs)
	require.NoError(t, err)
	assert.Empty(t, names, "a missing directory lists nothing")
}

func TestFileSource_RejectsEscapingNames(t *testing.T) {
	src := file.New(t.TempDir())
	_, err := src.Get(context.Background(), domain.DocumentTree, "../secrets")
	assert.Error(t, err)
}

func TestFileSource_Watch(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "trees", "guard.xml"), "<dialogs/>")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	src := file.New(root)
	ch, err := src.Watch(ctx)
	require.NoError(t, err)

	writeFile(t, filepath.Join(root, "trees", "guard.xml"), "<dialogs><a type=\"showdialog\"/></dialogs>")

	select {
	case ref := <-ch:
		assert.Equal(t, domain.DocumentRef{Kind: domain.DocumentTree, Name: "guard"}, ref)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for watch event")
	}

	cancel()
	require.Eventually(t, func() bool {
		select {
		case _, ok := <-ch:
			return !ok
		default:
			return false
		}
	}, 2*time.Second, 10*time.Millisecond, "channel is closed after cancellation")
}

func TestFileSource_WatchWithoutDirectories(t *testing.T) {
	_, err := file.New(t.TempDir()).Watch(context.Background())
	assert.Error(t, err)
}

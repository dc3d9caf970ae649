package service_test

import (
	"context"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"knowgent/internal/service"
	"knowgent/internal/storage"
)

func newNotebookEnv(t *testing.T, notebooks ...string) *testEnv {
	t.Helper()
	env := newTestEnv(t)
	for _, nb := range notebooks {
		_, err := env.notebookSvc.Create(context.Background(), nb, "")
		require.NoError(t, err)
	}
	return env
}

func TestNoteService_Create(t *testing.T) {
	ctx := context.Background()
	env := newNotebookEnv(t, "Research")

	note, err := env.noteSvc.Create(ctx, "Intro", "Research")
	require.NoError(t, err)
	assert.Equal(t, "Intro", note.Title)
	assert.Equal(t, "Research", note.NotebookName)
	assert.Equal(t, env.file("Research", "Intro"), note.Path)

	info, err := os.Stat(note.Path)
	require.NoError(t, err)
	assert.Equal(t, int64(0), info.Size())

	path, err := env.noteSvc.FilePath(ctx, "Intro", "Research")
	require.NoError(t, err)
	assert.Equal(t, note.Path, path)
}

func TestNoteService_Create_Errors(t *testing.T) {
	ctx := context.Background()
	env := newNotebookEnv(t, "Research")

	_, err := env.noteSvc.SaveAs(ctx, "Intro", "Research", "original")
	require.NoError(t, err)

	tests := []struct {
		name     string
		title    string
		notebook string
		wantKind service.Kind
	}{
		{name: "duplicate", title: "Intro", notebook: "Research", wantKind: service.KindDuplicate},
		{name: "missing notebook", title: "Intro", notebook: "Ghost", wantKind: service.KindNotFound},
		{name: "empty title", title: "", notebook: "Research", wantKind: service.KindValidation},
		{name: "separator in title", title: "a/b", notebook: "Research", wantKind: service.KindValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := env.noteSvc.Create(ctx, tt.title, tt.notebook)
			require.Error(t, err)
			assert.True(t, service.IsEntityError(err, service.EntityNote))
			assert.Equal(t, tt.wantKind, service.KindOf(err))
		})
	}

	assert.Equal(t, int64(1), env.count(t, "notes"))
	content, err := os.ReadFile(env.file("Research", "Intro"))
	require.NoError(t, err)
	assert.Equal(t, "original", string(content), "duplicate create must not touch the existing file")
	assert.False(t, exists(env.dir("Ghost")))
}

func TestNoteService_Create_CompensatesFile(t *testing.T) {
	ctx := context.Background()
	env := newNotebookEnv(t, "Research")
	env.notes = failingNotes{NoteStore: env.notes, createErr: errInjected}
	env.wire()

	_, err := env.noteSvc.SaveAs(ctx, "Intro", "Research", "lost")
	require.ErrorIs(t, err, errInjected)
	assert.True(t, service.IsEntityError(err, service.EntityNote))

	assert.False(t, exists(env.file("Research", "Intro")), "file must be removed when the insert fails")
	assert.Empty(t, entries(t, env.dir("Research")))
	assert.Equal(t, int64(0), env.count(t, "notes"))
}

func TestNoteService_ContentRoundTrip(t *testing.T) {
	ctx := context.Background()
	env := newNotebookEnv(t, "Research")

	_, err := env.noteSvc.Create(ctx, "Intro", "Research")
	require.NoError(t, err)

	content, err := env.noteSvc.Content(ctx, "Intro", "Research")
	require.NoError(t, err)
	assert.Equal(t, "", content)

	_, err = env.store.Exec(ctx, "UPDATE notes SET updated_at = '2000-01-01 00:00:00'")
	require.NoError(t, err)

	text := "# Intro\n\nGrüße, 世界\n"
	require.NoError(t, env.noteSvc.SaveContent(ctx, "Intro", "Research", text))

	for i := 0; i < 2; i++ {
		got, err := env.noteSvc.Content(ctx, "Intro", "Research")
		require.NoError(t, err)
		assert.Equal(t, text, got)
	}

	note, err := env.noteSvc.Get(ctx, "Intro", "Research")
	require.NoError(t, err)
	assert.True(t, note.UpdatedAt.After(time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)))
}

func TestNoteService_SaveContent_RollsBackTouch(t *testing.T) {
	ctx := context.Background()
	env := newNotebookEnv(t, "Research")
	_, err := env.noteSvc.SaveAs(ctx, "Intro", "Research", "before")
	require.NoError(t, err)

	env.notes = failingNotes{NoteStore: env.notes, touchErr: errInjected}
	env.wire()

	err = env.noteSvc.SaveContent(ctx, "Intro", "Research", "after")
	require.ErrorIs(t, err, errInjected)

	content, err := env.noteSvc.Content(ctx, "Intro", "Research")
	require.NoError(t, err)
	assert.Equal(t, "before", content)
}

func TestNoteService_ContentRoundTrip_Exact(t *testing.T) {
	ctx := context.Background()
	env := newNotebookEnv(t, "Research")
	_, err := env.noteSvc.Create(ctx, "Intro", "Research")
	require.NoError(t, err)

	tests := []struct {
		name    string
		content string
	}{
		{name: "leading bom", content: "\ufeffhello"},
		{name: "crlf and tabs", content: "a\tb\r\nc\r\n"},
		{name: "non-latin", content: "Grüße, 世界 €"},
		{name: "empty", content: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NoError(t, env.noteSvc.SaveContent(ctx, "Intro", "Research", tt.content))

			got, err := env.noteSvc.Content(ctx, "Intro", "Research")
			require.NoError(t, err)
			assert.Equal(t, tt.content, got)

			raw, err := os.ReadFile(env.file("Research", "Intro"))
			require.NoError(t, err)
			assert.Equal(t, tt.content, string(raw))
		})
	}
}

func TestNoteService_RejectsInvalidUTF8(t *testing.T) {
	ctx := context.Background()
	env := newNotebookEnv(t, "Research")
	_, err := env.noteSvc.SaveAs(ctx, "Intro", "Research", "before")
	require.NoError(t, err)

	err = env.noteSvc.SaveContent(ctx, "Intro", "Research", "caf\xe9")
	assert.Equal(t, service.KindValidation, service.KindOf(err))

	_, err = env.noteSvc.Replace(ctx, "Intro", "Research", "before", "\xff")
	assert.Equal(t, service.KindValidation, service.KindOf(err))

	_, err = env.noteSvc.SaveAs(ctx, "Other", "Research", "\xff\xfe")
	assert.Equal(t, service.KindValidation, service.KindOf(err))
	assert.False(t, exists(env.file("Research", "Other")))

	content, err := env.noteSvc.Content(ctx, "Intro", "Research")
	require.NoError(t, err)
	assert.Equal(t, "before", content)
}

func TestNoteService_SaveContent_RestoresRawBytes(t *testing.T) {
	ctx := context.Background()
	env := newNotebookEnv(t, "Research")
	_, err := env.noteSvc.Create(ctx, "Intro", "Research")
	require.NoError(t, err)

	legacy := []byte{'c', 'a', 'f', 0xE9, ' ', 0x80}
	require.NoError(t, os.WriteFile(env.file("Research", "Intro"), legacy, 0o644))

	env.notes = failingNotes{NoteStore: env.notes, touchErr: errInjected}
	env.wire()

	err = env.noteSvc.SaveContent(ctx, "Intro", "Research", "after")
	require.ErrorIs(t, err, errInjected)

	raw, err := os.ReadFile(env.file("Research", "Intro"))
	require.NoError(t, err)
	assert.Equal(t, legacy, raw)

	_, err = env.noteSvc.Replace(ctx, "Intro", "Research", "caf", "tea")
	require.ErrorIs(t, err, errInjected)

	raw, err = os.ReadFile(env.file("Research", "Intro"))
	require.NoError(t, err)
	assert.Equal(t, legacy, raw)
}

func TestNoteService_Replace_Concurrent(t *testing.T) {
	ctx := context.Background()
	env := newNotebookEnv(t, "Research")
	_, err := env.noteSvc.SaveAs(ctx, "Intro", "Research", "x")
	require.NoError(t, err)

	// Each replace doubles the text, so a lost update shows up in the length.
	const workers = 8
	var wg sync.WaitGroup
	errs := make(chan error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := env.noteSvc.Replace(ctx, "Intro", "Research", "x", "xx"); err != nil {
				errs <- err
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	content, err := env.noteSvc.Content(ctx, "Intro", "Research")
	require.NoError(t, err)
	assert.Equal(t, strings.Repeat("x", 1<<workers), content)
}

func TestNoteService_Content_NotFound(t *testing.T) {
	env := newNotebookEnv(t, "Research")

	_, err := env.noteSvc.Content(context.Background(), "Ghost", "Research")
	require.Error(t, err)
	assert.True(t, service.IsEntityError(err, service.EntityNote))
	assert.ErrorIs(t, err, storage.ErrNoteNotFound)
}

func TestNoteService_ListInNotebook(t *testing.T) {
	ctx := context.Background()
	env := newNotebookEnv(t, "Research", "Archive")

	for _, title := range []string{"B", "A"} {
		_, err := env.noteSvc.Create(ctx, title, "Research")
		require.NoError(t, err)
	}
	_, err := env.noteSvc.Create(ctx, "Z", "Archive")
	require.NoError(t, err)

	notes, err := env.noteSvc.ListInNotebook(ctx, "Research")
	require.NoError(t, err)
	require.Len(t, notes, 2)
	assert.Equal(t, "A", notes[0].Title)
	assert.Equal(t, "B", notes[1].Title)

	_, err = env.noteSvc.ListInNotebook(ctx, "Ghost")
	assert.Equal(t, service.KindNotFound, service.KindOf(err))
}

func TestNoteService_Update(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name         string
		upd          service.NoteUpdate
		wantTitle    string
		wantNotebook string
	}{
		{name: "rename", upd: service.NoteUpdate{NewTitle: ptr("Overview")}, wantTitle: "Overview", wantNotebook: "Research"},
		{name: "move", upd: service.NoteUpdate{NewNotebookName: ptr("Archive")}, wantTitle: "Intro", wantNotebook: "Archive"},
		{
			name:         "rename and move",
			upd:          service.NoteUpdate{NewTitle: ptr("Old intro"), NewNotebookName: ptr("Archive")},
			wantTitle:    "Old intro",
			wantNotebook: "Archive",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newNotebookEnv(t, "Research", "Archive")
			_, err := env.noteSvc.SaveAs(ctx, "Intro", "Research", "body")
			require.NoError(t, err)
			require.NoError(t, env.noteTagSvc.AddTagToNote(ctx, "Intro", "Research", "draft"))

			note, err := env.noteSvc.Update(ctx, "Intro", "Research", tt.upd)
			require.NoError(t, err)
			assert.Equal(t, tt.wantTitle, note.Title)
			assert.Equal(t, tt.wantNotebook, note.NotebookName)
			assert.Equal(t, env.file(tt.wantNotebook, tt.wantTitle), note.Path)

			assert.False(t, exists(env.file("Research", "Intro")))
			content, err := env.noteSvc.Content(ctx, tt.wantTitle, tt.wantNotebook)
			require.NoError(t, err)
			assert.Equal(t, "body", content)

			tags, err := env.noteTagSvc.TagsForNote(ctx, tt.wantTitle, tt.wantNotebook)
			require.NoError(t, err)
			assert.Equal(t, []string{"draft"}, tags, "tags follow the note")
		})
	}
}

func TestNoteService_Update_Errors(t *testing.T) {
	ctx := context.Background()
	env := newNotebookEnv(t, "Research", "Archive")
	for _, title := range []string{"Intro", "Taken"} {
		_, err := env.noteSvc.Create(ctx, title, "Research")
		require.NoError(t, err)
	}
	require.NoError(t, os.WriteFile(env.file("Archive", "Stray"), nil, 0o644))

	tests := []struct {
		name     string
		title    string
		upd      service.NoteUpdate
		wantKind service.Kind
	}{
		{name: "nothing to change", title: "Intro", upd: service.NoteUpdate{}, wantKind: service.KindValidation},
		{name: "same values", title: "Intro", upd: service.NoteUpdate{NewTitle: ptr("Intro")}, wantKind: service.KindValidation},
		{name: "missing note", title: "Ghost", upd: service.NoteUpdate{NewTitle: ptr("X")}, wantKind: service.KindNotFound},
		{name: "missing target notebook", title: "Intro", upd: service.NoteUpdate{NewNotebookName: ptr("Ghost")}, wantKind: service.KindNotFound},
		{name: "title taken", title: "Intro", upd: service.NoteUpdate{NewTitle: ptr("Taken")}, wantKind: service.KindDuplicate},
		{
			name:     "destination file exists",
			title:    "Intro",
			upd:      service.NoteUpdate{NewTitle: ptr("Stray"), NewNotebookName: ptr("Archive")},
			wantKind: service.KindFileSystem,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := env.noteSvc.Update(ctx, tt.title, "Research", tt.upd)
			require.Error(t, err)
			assert.True(t, service.IsEntityError(err, service.EntityNote))
			assert.Equal(t, tt.wantKind, service.KindOf(err))
		})
	}

	assert.True(t, exists(env.file("Research", "Intro")))
	assert.True(t, exists(env.file("Research", "Taken")))
}

func TestNoteService_Update_CompensatesMove(t *testing.T) {
	ctx := context.Background()
	env := newNotebookEnv(t, "Research", "Archive")
	_, err := env.noteSvc.SaveAs(ctx, "Intro", "Research", "body")
	require.NoError(t, err)

	env.notes = failingNotes{NoteStore: env.notes, updateErr: errInjected}
	env.wire()

	_, err = env.noteSvc.Update(ctx, "Intro", "Research", service.NoteUpdate{NewNotebookName: ptr("Archive")})
	require.ErrorIs(t, err, errInjected)

	assert.True(t, exists(env.file("Research", "Intro")), "file must be moved back")
	assert.False(t, exists(env.file("Archive", "Intro")))
	_, err = env.noteSvc.Get(ctx, "Intro", "Research")
	assert.NoError(t, err)
}

func TestNoteService_Delete(t *testing.T) {
	ctx := context.Background()
	env := newNotebookEnv(t, "Research")
	_, err := env.noteSvc.Create(ctx, "Intro", "Research")
	require.NoError(t, err)
	require.NoError(t, env.noteTagSvc.AddTagToNote(ctx, "Intro", "Research", "draft"))

	require.NoError(t, env.noteSvc.Delete(ctx, "Intro", "Research"))

	assert.Empty(t, entries(t, env.dir("Research")), "no file or trash left behind")
	assert.Equal(t, int64(0), env.count(t, "notes"))
	assert.Equal(t, int64(0), env.count(t, "note_tags"))
	assert.Equal(t, int64(1), env.count(t, "tags"))

	err = env.noteSvc.Delete(ctx, "Intro", "Research")
	assert.Equal(t, service.KindNotFound, service.KindOf(err))
}

func TestNoteService_Delete_MissingFile(t *testing.T) {
	ctx := context.Background()
	env := newNotebookEnv(t, "Research")
	_, err := env.noteSvc.Create(ctx, "Intro", "Research")
	require.NoError(t, err)
	require.NoError(t, os.Remove(env.file("Research", "Intro")))

	require.NoError(t, env.noteSvc.Delete(ctx, "Intro", "Research"))
	assert.Equal(t, int64(0), env.count(t, "notes"))
}

func TestNoteService_Delete_CompensatesTrash(t *testing.T) {
	ctx := context.Background()
	env := newNotebookEnv(t, "Research")
	_, err := env.noteSvc.SaveAs(ctx, "Intro", "Research", "keep")
	require.NoError(t, err)

	env.notes = failingNotes{NoteStore: env.notes, deleteErr: errInjected}
	env.wire()

	err = env.noteSvc.Delete(ctx, "Intro", "Research")
	require.ErrorIs(t, err, errInjected)
	assert.Equal(t, []string{"Intro.md"}, entries(t, env.dir("Research")))
}

func TestNoteService_FindReplace(t *testing.T) {
	ctx := context.Background()
	env := newNotebookEnv(t, "Research")
	_, err := env.noteSvc.SaveAs(ctx, "Intro", "Research", "todo: a, todo: b")
	require.NoError(t, err)

	spans, err := env.noteSvc.Find(ctx, "Intro", "Research", "todo")
	require.NoError(t, err)
	assert.Equal(t, []service.Span{{Start: 0, End: 4}, {Start: 9, End: 13}}, spans)

	_, err = env.noteSvc.Find(ctx, "Intro", "Research", "")
	assert.Equal(t, service.KindValidation, service.KindOf(err))

	n, err := env.noteSvc.Replace(ctx, "Intro", "Research", "todo", "done")
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	content, err := env.noteSvc.Content(ctx, "Intro", "Research")
	require.NoError(t, err)
	assert.Equal(t, "done: a, done: b", content)

	n, err = env.noteSvc.Replace(ctx, "Intro", "Research", "missing", "x")
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

// A full session: create a notebook and a note, tag it, edit it, move the
// notebook, then delete everything.
func TestScenario_ResearchIntroDraft(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	_, err := env.notebookSvc.Create(ctx, "Research", "reading notes")
	require.NoError(t, err)
	_, err = env.noteSvc.Create(ctx, "Intro", "Research")
	require.NoError(t, err)
	require.NoError(t, env.noteTagSvc.AddTagToNote(ctx, "Intro", "Research", "draft"))
	require.NoError(t, env.noteSvc.SaveContent(ctx, "Intro", "Research", "first words"))

	tags, err := env.noteTagSvc.TagsForNote(ctx, "Intro", "Research")
	require.NoError(t, err)
	assert.Equal(t, []string{"draft"}, tags)

	tagged, err := env.noteTagSvc.NotesForTag(ctx, "draft")
	require.NoError(t, err)
	require.Len(t, tagged, 1)
	assert.Equal(t, "Intro", tagged[0].Title)
	assert.Equal(t, "Research", tagged[0].NotebookName)

	_, err = env.notebookSvc.Update(ctx, "Research", service.NotebookUpdate{NewName: ptr("Thesis")})
	require.NoError(t, err)

	content, err := env.noteSvc.Content(ctx, "Intro", "Thesis")
	require.NoError(t, err)
	assert.Equal(t, "first words", content)

	report, err := env.checker.Check(ctx)
	require.NoError(t, err)
	assert.True(t, report.Consistent(), "report: %+v", report)

	require.NoError(t, env.notebookSvc.Delete(ctx, "Thesis"))
	assert.Empty(t, entries(t, env.fs.BasePath()))

	names, err := env.tagSvc.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"draft"}, names)

	tagged, err = env.noteTagSvc.NotesForTag(ctx, "draft")
	require.NoError(t, err)
	assert.Empty(t, tagged)
}

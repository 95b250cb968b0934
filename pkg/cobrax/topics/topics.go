// Package topics adds file-based help topics to a Cobra application, so
// concepts like rule syntax get real documentation without becoming fake
// subcommands. Topics are markdown or text files served from an fs.FS,
// rendered for the terminal when possible.
package topics

import (
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/spf13/cobra"
)

// Topic is one help topic, named after its file minus the extension.
type Topic struct {
	Name    string
	Format  string // file extension, e.g. ".md"
	Content string
}

// Manager holds the loaded topics and the renderer used to display them.
type Manager struct {
	topics   map[string]*Topic
	renderer Renderer
}

// Load reads every .md and .txt file in fsys into a Manager. The renderer
// may be nil, in which case topics are printed verbatim.
func Load(fsys fs.FS, renderer Renderer) (*Manager, error) {
	if renderer == nil {
		renderer = &PlainRenderer{}
	}
	m := &Manager{topics: make(map[string]*Topic), renderer: renderer}

	err := fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		ext := path.Ext(p)
		if ext != ".md" && ext != ".txt" {
			return nil
		}
		content, err := fs.ReadFile(fsys, p)
		if err != nil {
			return err
		}
		name := strings.TrimSuffix(path.Base(p), ext)
		m.topics[name] = &Topic{Name: name, Format: ext, Content: string(content)}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load help topics: %w", err)
	}
	return m, nil
}

// Get retrieves a topic by name.
func (m *Manager) Get(name string) (*Topic, bool) {
	t, ok := m.topics[name]
	return t, ok
}

// List returns all topic names, sorted.
func (m *Manager) List() []string {
	names := make([]string, 0, len(m.topics))
	for name := range m.topics {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Render returns a topic's content formatted for the terminal.
func (m *Manager) Render(t *Topic) string {
	return m.renderer.Render(t.Content, t.Format)
}

// Attach replaces rootCmd's help command with one that also serves topics:
// `<app> help <topic>` prints the rendered topic, and `<app> help topics`
// lists them. Command help is untouched.
func (m *Manager) Attach(rootCmd *cobra.Command) {
	originalHelp := rootCmd.HelpFunc()

	helpCmd := &cobra.Command{
		Use:   "help [command or topic]",
		Short: "Help about any command or topic",
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) == 0 {
				originalHelp(rootCmd, nil)
				return
			}

			if args[0] == "topics" {
				names := m.List()
				if len(names) == 0 {
					cmd.Println("No help topics available.")
					return
				}
				cmd.Println("Available help topics:")
				for _, name := range names {
					cmd.Printf("  %s\n", name)
				}
				cmd.Printf("\nUse \"%s help <topic>\" to read one.\n", rootCmd.Name())
				return
			}

			// Commands take precedence over topics of the same name
			if sub, _, err := rootCmd.Find(args); err == nil && sub != rootCmd {
				originalHelp(sub, nil)
				return
			}

			if topic, ok := m.Get(args[0]); ok {
				cmd.Print(m.Render(topic))
				return
			}

			cmd.PrintErrf("Unknown help topic or command: %s\n", args[0])
		},
	}

	rootCmd.SetHelpCommand(helpCmd)
}

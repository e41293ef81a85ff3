package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tripdeck/internal/backup"
)

type BackupCreateCmd struct{}

func (c *BackupCreateCmd) Run(ctx *Context) error {
	m := backup.NewManager(ctx.Store, ctx.Data)
	path, err := m.Create()
	if err != nil {
		return err
	}
	fmt.Printf("Snapshot written to %s\n", path)
	return nil
}

type BackupListCmd struct{}

func (c *BackupListCmd) Run(ctx *Context) error {
	m := backup.NewManager(ctx.Store, ctx.Data)
	backups, err := m.List()
	if err != nil {
		return err
	}
	if len(backups) == 0 {
		fmt.Println("No snapshots yet.")
		return nil
	}
	tbl := uitable.New()
	tbl.AddRow("WHEN", "SIZE", "PATH")
	for _, b := range backups {
		tbl.AddRow(b.Timestamp.Format("2006-01-02 15:04"), fmt.Sprintf("%d B", b.Size), b.Path)
	}
	fmt.Fprintln(color.Output, tbl)
	return nil
}

type BackupRestoreCmd struct {
	Path string `arg:"" type:"existingfile" help:"Snapshot file to restore."`
	Yes  bool   `short:"y" help:"Skip the confirmation prompt."`
}

func (c *BackupRestoreCmd) Run(ctx *Context) error {
	if _, err := requireSession(ctx); err != nil {
		return err
	}
	if !c.Yes {
		ok, err := confirm("Replace the whole itinerary with this snapshot?")
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
	}
	m := backup.NewManager(ctx.Store, ctx.Data)
	if err := m.Restore(c.Path); err != nil {
		return err
	}
	fmt.Println("Snapshot restored. The previous state was snapshotted first.")
	return nil
}

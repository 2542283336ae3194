package series

import (
	"gifmaker/parallel"
	"gifmaker/sequence"

	"github.com/alecthomas/kong"
)

type CLICmd struct {
	Path string `arg:"" help:"Folder holding the source images, all of the same size"`
	sequence.Params
}

func (c *CLICmd) Validate(kctx *kong.Context) error {
	return c.Params.Validate()
}

func (c *CLICmd) Run(worker parallel.WorkerFunc, wait parallel.WaitFunc, show sequence.PreviewFunc) error {
	frames, err := Load(c.Path)
	if err != nil {
		return err
	}

	return c.Emit(frames, worker, wait, show)
}

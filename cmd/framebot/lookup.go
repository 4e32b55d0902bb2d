package main

import (
	"fmt"
	"io"
	"os"

	"github.com/keepmind9/framebot/internal/command"
	"github.com/keepmind9/framebot/internal/framedata"
	"github.com/keepmind9/framebot/internal/irc"
	"github.com/keepmind9/framebot/pkg/constants"
	"github.com/spf13/cobra"
)

var lookupDataFile string

var lookupCmd = &cobra.Command{
	Use:   "lookup <character> <move...>",
	Short: "Answer a frame data query locally",
	Long: `Run a frames command against the frame data file without connecting to chat.
The output is exactly what the bot would reply in the channel.

Example:
  framebot lookup Sol 5K
  framebot lookup gio "dash kick" --data framedata.yaml`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runLookup(cmd.OutOrStdout(), lookupDataFile, args); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
			os.Exit(1)
		}
	},
}

// runLookup answers args as if a viewer had typed "!frames <args>"
func runLookup(w io.Writer, dataFile string, args []string) error {
	store, err := framedata.LoadFile(dataFile)
	if err != nil {
		return err
	}

	dispatcher := command.NewDispatcher(store, nil)
	reply, ok := dispatcher.Reply(irc.Command{
		Name: constants.FramesCommand,
		Args: append([]string{}, args...),
	})
	if !ok {
		return fmt.Errorf("lookup failed, see log for details")
	}

	fmt.Fprintln(w, reply)
	return nil
}

func init() {
	defaultData := os.Getenv("FRAMEBOT_FRAME_DATA")
	if defaultData == "" {
		defaultData = constants.DefaultFrameDataFile
	}
	lookupCmd.Flags().StringVarP(&lookupDataFile, "data", "d", defaultData, "Frame data file")
}

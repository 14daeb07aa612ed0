package cmd

import (
	"fmt"
	"log"
	"net/http"

	"github.com/spf13/cobra"
)

// syncCmd represents the sync command.
var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Show the most recent background sync run",
	Run: func(cmd *cobra.Command, args []string) {
		data, err := doRequest(http.MethodGet, "/api/v1/sync/latest", nil)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println(string(data))
	},
}

func init() {
	rootCmd.AddCommand(syncCmd)
}

package cmd

import (
	"fmt"
	"log"
	"net/http"

	"github.com/spf13/cobra"
)

// healthCmd represents the health command.
var healthCmd = &cobra.Command{
	Use:     "health",
	Short:   "Check fabricview readiness",
	Example: "fabricviewctl -s http://fabricview:8081 health",
	Run: func(cmd *cobra.Command, args []string) {
		data, err := doRequest(http.MethodGet, "/readyz", nil)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println(string(data))
	},
}

func init() {
	rootCmd.AddCommand(healthCmd)
}

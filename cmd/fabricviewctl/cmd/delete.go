package cmd

import (
	"fmt"
	"log"
	"net/http"

	"github.com/spf13/cobra"
)

// deleteCmd represents the delete command.
var deleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete console entities by id",
}

func deleteEntity(base string) func(*cobra.Command, []string) {
	return func(cmd *cobra.Command, args []string) {
		for _, id := range args {
			if _, err := doRequest(http.MethodDelete, base+"/"+id, nil); err != nil {
				log.Fatal(err)
			}
			fmt.Println("deleted", id)
		}
	}
}

func init() {
	rootCmd.AddCommand(deleteCmd)
	for name, base := range map[string]string{
		"fabric": "/api/v1/fabrics",
		"vlan":   "/api/v1/vlans",
		"subnet": "/api/v1/subnets",
		"space":  "/api/v1/spaces",
		"zone":   "/api/v1/zones",
		"domain": "/api/v1/domains",
		"node":   "/api/v1/nodes",
	} {
		deleteCmd.AddCommand(&cobra.Command{
			Use:   name + " ID...",
			Short: "Delete a " + name,
			Args: func(_ *cobra.Command, args []string) error {
				return verifyIDs(args)
			},
			Run: deleteEntity(base),
		})
	}
}

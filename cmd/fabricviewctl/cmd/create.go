package cmd

import (
	"fmt"
	"log"
	"net/http"

	"github.com/spf13/cobra"
)

var (
	createVID      int
	createFabricID int64
	createName     string
	createVLANID   int64
	createSpaceID  int64
)

// createCmd represents the create command.
var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create console entities",
}

func createEntity(path string, payload any) {
	data, err := doRequest(http.MethodPost, path, payload)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(string(data))
}

var createFabricCmd = &cobra.Command{
	Use:     "fabric NAME",
	Short:   "Create a fabric",
	Example: "fabricviewctl create fabric dc-east",
	Args:    cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		createEntity("/api/v1/fabrics", map[string]any{"name": args[0]})
	},
}

var createSpaceCmd = &cobra.Command{
	Use:   "space NAME",
	Short: "Create a space",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		createEntity("/api/v1/spaces", map[string]any{"name": args[0]})
	},
}

var createZoneCmd = &cobra.Command{
	Use:   "zone NAME [DESCRIPTION]",
	Short: "Create an availability zone",
	Args:  cobra.RangeArgs(1, 2),
	Run: func(cmd *cobra.Command, args []string) {
		description := ""
		if len(args) > 1 {
			description = args[1]
		}
		createEntity("/api/v1/zones", map[string]any{"name": args[0], "description": description})
	},
}

var createDomainCmd = &cobra.Command{
	Use:   "domain NAME",
	Short: "Create a DNS domain",
	Run: func(cmd *cobra.Command, args []string) {
		authoritative, _ := cmd.Flags().GetBool("authoritative")
		createEntity("/api/v1/domains", map[string]any{"name": args[0], "authoritative": authoritative})
	},
	Args: cobra.ExactArgs(1),
}

var createVLANCmd = &cobra.Command{
	Use:     "vlan",
	Short:   "Create a VLAN on a fabric",
	Example: "fabricviewctl create vlan --fabric 1 --vid 10 --name storage",
	Run: func(cmd *cobra.Command, args []string) {
		createEntity("/api/v1/vlans", map[string]any{
			"vid":       createVID,
			"name":      createName,
			"fabric_id": createFabricID,
		})
	},
}

var createSubnetCmd = &cobra.Command{
	Use:     "subnet CIDR",
	Short:   "Create a subnet on a VLAN",
	Example: "fabricviewctl create subnet 10.0.0.0/24 --vlan 3 --space 1",
	Args:    cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		payload := map[string]any{
			"cidr":    args[0],
			"name":    createName,
			"vlan_id": createVLANID,
		}
		if createSpaceID != 0 {
			payload["space_id"] = createSpaceID
		}
		createEntity("/api/v1/subnets", payload)
	},
}

func init() {
	rootCmd.AddCommand(createCmd)
	createCmd.AddCommand(createFabricCmd)
	createCmd.AddCommand(createSpaceCmd)
	createCmd.AddCommand(createZoneCmd)
	createCmd.AddCommand(createDomainCmd)
	createCmd.AddCommand(createVLANCmd)
	createCmd.AddCommand(createSubnetCmd)

	createDomainCmd.Flags().Bool("authoritative", true, "domain is authoritative")

	createVLANCmd.Flags().IntVar(&createVID, "vid", 0, "802.1Q VLAN id (0 for untagged)")
	createVLANCmd.Flags().Int64Var(&createFabricID, "fabric", 0, "fabric id")
	createVLANCmd.Flags().StringVar(&createName, "name", "", "display name")
	_ = createVLANCmd.MarkFlagRequired("fabric")

	createSubnetCmd.Flags().Int64Var(&createVLANID, "vlan", 0, "vlan id")
	createSubnetCmd.Flags().Int64Var(&createSpaceID, "space", 0, "space id")
	createSubnetCmd.Flags().StringVar(&createName, "name", "", "display name")
	_ = createSubnetCmd.MarkFlagRequired("vlan")
}

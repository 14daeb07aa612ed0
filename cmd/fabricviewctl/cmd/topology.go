package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"
)

type topoRow struct {
	FabricID   *int64 `json:"fabric_id"`
	FabricName string `json:"fabric_name"`
	VLANID     *int64 `json:"vlan_id"`
	VLANName   string `json:"vlan_name"`
	SubnetID   *int64 `json:"subnet_id"`
	SubnetName string `json:"subnet_name"`
	SpaceID    *int64 `json:"space_id"`
	SpaceName  string `json:"space_name"`
}

type topoResponse struct {
	Grouping   string    `json:"grouping"`
	Generation uint64    `json:"generation"`
	Rows       []topoRow `json:"rows"`
}

// topologyCmd represents the topology command. The server renders the
// tables with repeated leading labels already blanked, so rows print
// verbatim in order.
var topologyCmd = &cobra.Command{
	Use:   "topology",
	Short: "Show the rendered network topology tables",
}

var topologyFabricsCmd = &cobra.Command{
	Use:   "fabrics",
	Short: "Subnets grouped by fabric and VLAN",
	Run: func(cmd *cobra.Command, args []string) {
		var resp topoResponse
		printed, err := getJSON("/api/v1/topology/fabrics", &resp)
		if err != nil {
			log.Fatal(err)
		}
		if printed {
			return
		}
		w := newTable()
		fmt.Fprintln(w, "FABRIC\tVLAN\tSUBNET\tSPACE")
		for _, r := range resp.Rows {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", r.FabricName, r.VLANName, r.SubnetName, r.SpaceName)
		}
		w.Flush()
	},
}

var topologySpacesCmd = &cobra.Command{
	Use:   "spaces",
	Short: "Subnets grouped by space",
	Run: func(cmd *cobra.Command, args []string) {
		var resp topoResponse
		printed, err := getJSON("/api/v1/topology/spaces", &resp)
		if err != nil {
			log.Fatal(err)
		}
		if printed {
			return
		}
		w := newTable()
		fmt.Fprintln(w, "SPACE\tSUBNET\tVLAN\tFABRIC")
		for _, r := range resp.Rows {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", r.SpaceName, r.SubnetName, r.VLANName, r.FabricName)
		}
		w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(topologyCmd)
	topologyCmd.AddCommand(topologyFabricsCmd)
	topologyCmd.AddCommand(topologySpacesCmd)
}

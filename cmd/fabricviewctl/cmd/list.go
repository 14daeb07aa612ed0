package cmd

import (
	"fmt"
	"log"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

type fabricRow struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type vlanRow struct {
	ID       int64  `json:"id"`
	VID      int    `json:"vid"`
	Name     string `json:"name"`
	FabricID int64  `json:"fabric_id"`
}

type subnetRow struct {
	ID      int64  `json:"id"`
	CIDR    string `json:"cidr"`
	Name    string `json:"name"`
	VLANID  int64  `json:"vlan_id"`
	SpaceID *int64 `json:"space_id"`
}

type spaceRow struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type zoneRow struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type domainRow struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	Authoritative bool   `json:"authoritative"`
}

type nodeRow struct {
	ID       int64   `json:"id"`
	SystemID string  `json:"system_id"`
	Hostname string  `json:"hostname"`
	Address  *string `json:"address"`
	Status   string  `json:"status"`
	ZoneID   *int64  `json:"zone_id"`
	DomainID *int64  `json:"domain_id"`
}

func newTable() *tabwriter.Writer {
	return tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
}

func orDash(p *int64) string {
	if p == nil {
		return "-"
	}
	return fmt.Sprintf("%d", *p)
}

func orDashStr(p *string) string {
	if p == nil || *p == "" {
		return "-"
	}
	return *p
}

// listCmd represents the list command.
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List console entities",
}

var listFabricsCmd = &cobra.Command{
	Use:   "fabrics",
	Short: "List fabrics",
	Run: func(cmd *cobra.Command, args []string) {
		var rows []fabricRow
		printed, err := getJSON("/api/v1/fabrics", &rows)
		if err != nil {
			log.Fatal(err)
		}
		if printed {
			return
		}
		w := newTable()
		fmt.Fprintln(w, "ID\tNAME")
		for _, r := range rows {
			fmt.Fprintf(w, "%d\t%s\n", r.ID, r.Name)
		}
		w.Flush()
	},
}

var listVLANsCmd = &cobra.Command{
	Use:   "vlans",
	Short: "List VLANs",
	Run: func(cmd *cobra.Command, args []string) {
		var rows []vlanRow
		printed, err := getJSON("/api/v1/vlans", &rows)
		if err != nil {
			log.Fatal(err)
		}
		if printed {
			return
		}
		w := newTable()
		fmt.Fprintln(w, "ID\tVID\tNAME\tFABRIC")
		for _, r := range rows {
			fmt.Fprintf(w, "%d\t%d\t%s\t%d\n", r.ID, r.VID, r.Name, r.FabricID)
		}
		w.Flush()
	},
}

var listSubnetsCmd = &cobra.Command{
	Use:   "subnets",
	Short: "List subnets",
	Run: func(cmd *cobra.Command, args []string) {
		var rows []subnetRow
		printed, err := getJSON("/api/v1/subnets", &rows)
		if err != nil {
			log.Fatal(err)
		}
		if printed {
			return
		}
		w := newTable()
		fmt.Fprintln(w, "ID\tCIDR\tNAME\tVLAN\tSPACE")
		for _, r := range rows {
			fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%s\n", r.ID, r.CIDR, r.Name, r.VLANID, orDash(r.SpaceID))
		}
		w.Flush()
	},
}

var listSpacesCmd = &cobra.Command{
	Use:   "spaces",
	Short: "List spaces",
	Run: func(cmd *cobra.Command, args []string) {
		var rows []spaceRow
		printed, err := getJSON("/api/v1/spaces", &rows)
		if err != nil {
			log.Fatal(err)
		}
		if printed {
			return
		}
		w := newTable()
		fmt.Fprintln(w, "ID\tNAME")
		for _, r := range rows {
			fmt.Fprintf(w, "%d\t%s\n", r.ID, r.Name)
		}
		w.Flush()
	},
}

var listZonesCmd = &cobra.Command{
	Use:   "zones",
	Short: "List availability zones",
	Run: func(cmd *cobra.Command, args []string) {
		var rows []zoneRow
		printed, err := getJSON("/api/v1/zones", &rows)
		if err != nil {
			log.Fatal(err)
		}
		if printed {
			return
		}
		w := newTable()
		fmt.Fprintln(w, "ID\tNAME\tDESCRIPTION")
		for _, r := range rows {
			fmt.Fprintf(w, "%d\t%s\t%s\n", r.ID, r.Name, r.Description)
		}
		w.Flush()
	},
}

var listDomainsCmd = &cobra.Command{
	Use:   "domains",
	Short: "List DNS domains",
	Run: func(cmd *cobra.Command, args []string) {
		var rows []domainRow
		printed, err := getJSON("/api/v1/domains", &rows)
		if err != nil {
			log.Fatal(err)
		}
		if printed {
			return
		}
		w := newTable()
		fmt.Fprintln(w, "ID\tNAME\tAUTHORITATIVE")
		for _, r := range rows {
			fmt.Fprintf(w, "%d\t%s\t%t\n", r.ID, r.Name, r.Authoritative)
		}
		w.Flush()
	},
}

var listNodesCmd = &cobra.Command{
	Use:   "nodes",
	Short: "List nodes",
	Run: func(cmd *cobra.Command, args []string) {
		var rows []nodeRow
		printed, err := getJSON("/api/v1/nodes", &rows)
		if err != nil {
			log.Fatal(err)
		}
		if printed {
			return
		}
		w := newTable()
		fmt.Fprintln(w, "ID\tSYSTEM_ID\tHOSTNAME\tADDRESS\tSTATUS\tZONE\tDOMAIN")
		for _, r := range rows {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\t%s\n",
				r.ID, r.SystemID, r.Hostname, orDashStr(r.Address), r.Status, orDash(r.ZoneID), orDash(r.DomainID))
		}
		w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.AddCommand(listFabricsCmd)
	listCmd.AddCommand(listVLANsCmd)
	listCmd.AddCommand(listSubnetsCmd)
	listCmd.AddCommand(listSpacesCmd)
	listCmd.AddCommand(listZonesCmd)
	listCmd.AddCommand(listDomainsCmd)
	listCmd.AddCommand(listNodesCmd)
}

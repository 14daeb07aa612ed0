// Package cmd implements the fabricviewctl subcommands.
package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"
)

var (
	serverURL string
	jsonOut   bool
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "fabricviewctl",
	Short: "fabricview client",
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	server := os.Getenv("FABRICVIEW_SERVER")
	if server == "" {
		server = "http://127.0.0.1:8081"
	}
	rootCmd.PersistentFlags().StringVarP(&serverURL, "server", "s", server, "fabricview server base URL")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "print raw JSON responses")
}

var httpClient = &http.Client{Timeout: 10 * time.Second}

type apiError struct {
	Error struct {
		Code    string         `json:"code"`
		Message string         `json:"message"`
		Details map[string]any `json:"details"`
	} `json:"error"`
}

// doRequest performs one API call and returns the response body. Non-2xx
// responses are turned into errors carrying the server's error envelope.
func doRequest(method, path string, body any) ([]byte, error) {
	var reqBody io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reqBody = bytes.NewReader(buf)
	}

	req, err := http.NewRequest(method, serverURL+path, reqBody)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode >= 300 {
		var ae apiError
		if err := json.Unmarshal(data, &ae); err == nil && ae.Error.Code != "" {
			return nil, fmt.Errorf("%s: %s", ae.Error.Code, ae.Error.Message)
		}
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return data, nil
}

// getJSON fetches path into v. When --json is set the raw body is printed
// instead and the returned bool is true so the caller skips its own output.
func getJSON(path string, v any) (bool, error) {
	data, err := doRequest(http.MethodGet, path, nil)
	if err != nil {
		return false, err
	}
	if jsonOut {
		fmt.Println(string(data))
		return true, nil
	}
	return false, json.Unmarshal(data, v)
}

func verifyIDs(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("requires at least one id")
	}
	for _, arg := range args {
		if _, err := strconv.ParseInt(arg, 10, 64); err != nil {
			return fmt.Errorf("invalid id: %s", arg)
		}
	}
	return nil
}

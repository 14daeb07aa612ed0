// Package snmpinfo fetches basic system facts from a node over SNMPv2c.
package snmpinfo

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gosnmp/gosnmp"
)

const (
	oidSysDescr    = "1.3.6.1.2.1.1.1.0"
	oidSysName     = "1.3.6.1.2.1.1.5.0"
	oidSysLocation = "1.3.6.1.2.1.1.6.0"
)

type Config struct {
	Community string
	Port      uint16
	Timeout   time.Duration
	Retries   int
}

type SystemInfo struct {
	SysName     string
	SysDescr    string
	SysLocation string
}

type Client struct {
	cfg Config
}

func NewClient(cfg Config) *Client {
	if strings.TrimSpace(cfg.Community) == "" {
		cfg.Community = "public"
	}
	if cfg.Port == 0 {
		cfg.Port = 161
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 2 * time.Second
	}
	if cfg.Retries < 0 {
		cfg.Retries = 0
	}
	return &Client{cfg: cfg}
}

// SystemInfo queries sysName/sysDescr/sysLocation from the target address.
// The context bounds the whole exchange.
func (c *Client) SystemInfo(ctx context.Context, address string) (SystemInfo, error) {
	conn := &gosnmp.GoSNMP{
		Target:    address,
		Port:      c.cfg.Port,
		Community: c.cfg.Community,
		Version:   gosnmp.Version2c,
		Timeout:   c.cfg.Timeout,
		Retries:   c.cfg.Retries,
		Context:   ctx,
	}
	if err := conn.Connect(); err != nil {
		return SystemInfo{}, fmt.Errorf("snmp connect %s: %w", address, err)
	}
	defer conn.Conn.Close()

	result, err := conn.Get([]string{oidSysDescr, oidSysName, oidSysLocation})
	if err != nil {
		return SystemInfo{}, fmt.Errorf("snmp get %s: %w", address, err)
	}

	var info SystemInfo
	for _, v := range result.Variables {
		s, ok := pduString(v)
		if !ok {
			continue
		}
		switch v.Name {
		case "." + oidSysDescr:
			info.SysDescr = s
		case "." + oidSysName:
			info.SysName = s
		case "." + oidSysLocation:
			info.SysLocation = s
		}
	}
	return info, nil
}

func pduString(v gosnmp.SnmpPDU) (string, bool) {
	switch v.Type {
	case gosnmp.OctetString:
		b, ok := v.Value.([]byte)
		if !ok {
			return "", false
		}
		return strings.TrimSpace(string(b)), true
	default:
		return "", false
	}
}

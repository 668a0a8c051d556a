package util

import (
	"net"
	"testing"

	"github.com/DE-labtory/billing"
)

// GetAvailablePort asks the kernel for a free loopback port.
func GetAvailablePort(t *testing.T) uint16 {
	lis, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("cannot find available port: %s", err)
	}
	defer lis.Close()

	return uint16(lis.Addr().(*net.TCPAddr).Port)
}

func GetAvailableAddress(t *testing.T) billing.Address {
	return billing.Address{
		Ip:   "127.0.0.1",
		Port: GetAvailablePort(t),
	}
}

package billing

import (
	"errors"
	"fmt"
	"net"
	"strconv"
)

var ErrInvalidAddress = errors.New("address must be in host:port form")

type Address struct {
	Ip   string
	Port uint16
}

func (a Address) String() string {
	return fmt.Sprintf("%s:%d", a.Ip, a.Port)
}

func ToAddress(addr string) (Address, error) {
	host, port, err := net.SplitHostPort(addr)
	if err != nil {
		return Address{}, fmt.Errorf("%w: %s", ErrInvalidAddress, addr)
	}
	p, err := strconv.ParseUint(port, 10, 16)
	if err != nil {
		return Address{}, fmt.Errorf("%w: %s", ErrInvalidAddress, addr)
	}

	return Address{
		Ip:   host,
		Port: uint16(p),
	}, nil
}

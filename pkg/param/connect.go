// Copyright 2026 VortexDB Authors
// SPDX-License-Identifier: Apache-2.0

package param

import (
	"fmt"
	"time"
)

// Connection defaults. Keepalive values mirror what the service side
// tolerates without tripping its enforcement policy.
const (
	DefaultConnectTimeout   = 10 * time.Second
	DefaultKeepAliveTime    = 55 * time.Second
	DefaultKeepAliveTimeout = 20 * time.Second
	DefaultIdleTimeout      = 24 * time.Hour
)

// ConnectParam carries the address and transport tuning used to construct a
// client. Every tunable is optional with a documented default.
type ConnectParam struct {
	host                  string
	port                  int
	connectTimeout        time.Duration
	keepAliveTime         time.Duration
	keepAliveTimeout      time.Duration
	keepAliveWithoutCalls bool
	idleTimeout           time.Duration
}

func (p *ConnectParam) Host() string                    { return p.host }
func (p *ConnectParam) Port() int                       { return p.port }
func (p *ConnectParam) Address() string                 { return fmt.Sprintf("%s:%d", p.host, p.port) }
func (p *ConnectParam) ConnectTimeout() time.Duration   { return p.connectTimeout }
func (p *ConnectParam) KeepAliveTime() time.Duration    { return p.keepAliveTime }
func (p *ConnectParam) KeepAliveTimeout() time.Duration { return p.keepAliveTimeout }
func (p *ConnectParam) KeepAliveWithoutCalls() bool     { return p.keepAliveWithoutCalls }
func (p *ConnectParam) IdleTimeout() time.Duration      { return p.idleTimeout }

// ConnectBuilder builds a ConnectParam.
type ConnectBuilder struct {
	p ConnectParam
}

func NewConnectBuilder() *ConnectBuilder {
	return &ConnectBuilder{p: ConnectParam{
		host:             "localhost",
		port:             19530,
		connectTimeout:   DefaultConnectTimeout,
		keepAliveTime:    DefaultKeepAliveTime,
		keepAliveTimeout: DefaultKeepAliveTimeout,
		idleTimeout:      DefaultIdleTimeout,
	}}
}

func (b *ConnectBuilder) WithHost(host string) *ConnectBuilder {
	b.p.host = host
	return b
}

func (b *ConnectBuilder) WithPort(port int) *ConnectBuilder {
	b.p.port = port
	return b
}

func (b *ConnectBuilder) WithConnectTimeout(d time.Duration) *ConnectBuilder {
	b.p.connectTimeout = d
	return b
}

func (b *ConnectBuilder) WithKeepAliveTime(d time.Duration) *ConnectBuilder {
	b.p.keepAliveTime = d
	return b
}

func (b *ConnectBuilder) WithKeepAliveTimeout(d time.Duration) *ConnectBuilder {
	b.p.keepAliveTimeout = d
	return b
}

func (b *ConnectBuilder) WithKeepAliveWithoutCalls(enabled bool) *ConnectBuilder {
	b.p.keepAliveWithoutCalls = enabled
	return b
}

func (b *ConnectBuilder) WithIdleTimeout(d time.Duration) *ConnectBuilder {
	b.p.idleTimeout = d
	return b
}

func (b *ConnectBuilder) Build() (*ConnectParam, error) {
	if err := checkName(b.p.host, "host"); err != nil {
		return nil, err
	}
	if b.p.port <= 0 || b.p.port > 65535 {
		return nil, errorf("port must be in (0, 65535], got %d", b.p.port)
	}
	if b.p.connectTimeout <= 0 {
		return nil, errorf("connect timeout must be positive, got %v", b.p.connectTimeout)
	}
	if b.p.keepAliveTime <= 0 {
		return nil, errorf("keepalive time must be positive, got %v", b.p.keepAliveTime)
	}
	if b.p.keepAliveTimeout <= 0 {
		return nil, errorf("keepalive timeout must be positive, got %v", b.p.keepAliveTimeout)
	}
	if b.p.idleTimeout <= 0 {
		return nil, errorf("idle timeout must be positive, got %v", b.p.idleTimeout)
	}
	built := b.p
	return &built, nil
}

// Package mocks provides mock implementations for testing purposes.
package mocks

//go:generate mockgen -destination=mock_persistence.go -package=mocks github.com/james-ap-sunny/interbank-transfers/internal/ports/gateway/persistence Store,Tx
//go:generate mockgen -destination=mock_platform.go -package=mocks github.com/james-ap-sunny/interbank-transfers/internal/ports/gateway/platform Clock,IDGenerator

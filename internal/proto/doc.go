// Package proto holds the protobuf contract of the Elections gRPC service
// and the code generated from it.
package proto

//go:generate protoc --go_out=. --go_opt=paths=source_relative --go-grpc_out=. --go-grpc_opt=paths=source_relative elections.proto

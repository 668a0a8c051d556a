package pb

//go:generate protoc --go_out=plugins=grpc:. billing.proto

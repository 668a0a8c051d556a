package pb

import (
	"bytes"
	"compress/gzip"

	proto "github.com/golang/protobuf/proto"
	descriptor "github.com/golang/protobuf/protoc-gen-go/descriptor"
)

// fileDescriptor_billing is the gzipped FileDescriptorProto of billing.proto,
// the form proto.RegisterFile and gRPC reflection expect.
var fileDescriptor_billing = compressDescriptor(billingFileDescriptor())

func billingFileDescriptor() *descriptor.FileDescriptorProto {
	return &descriptor.FileDescriptorProto{
		Name:    proto.String("billing.proto"),
		Package: proto.String("billing"),
		Syntax:  proto.String("proto3"),
		MessageType: []*descriptor.DescriptorProto{
			{
				Name: proto.String("None"),
			},
			{
				Name: proto.String("UserProfile"),
				Field: []*descriptor.FieldDescriptorProto{
					scalarField("name", "name", 1, descriptor.FieldDescriptorProto_TYPE_STRING),
					scalarField("rating", "rating", 2, descriptor.FieldDescriptorProto_TYPE_INT64),
					scalarField("amount", "amount", 3, descriptor.FieldDescriptorProto_TYPE_INT64),
				},
			},
			{
				Name: proto.String("EmissionAmount"),
				Field: []*descriptor.FieldDescriptorProto{
					scalarField("amount", "amount", 1, descriptor.FieldDescriptorProto_TYPE_INT64),
				},
			},
			{
				Name: proto.String("MoveCoinsTransaction"),
				Field: []*descriptor.FieldDescriptorProto{
					scalarField("src_user", "srcUser", 1, descriptor.FieldDescriptorProto_TYPE_STRING),
					scalarField("dst_user", "dstUser", 2, descriptor.FieldDescriptorProto_TYPE_STRING),
					scalarField("amount", "amount", 3, descriptor.FieldDescriptorProto_TYPE_INT64),
				},
			},
			{
				Name: proto.String("Response"),
				Field: []*descriptor.FieldDescriptorProto{
					{
						Name:     proto.String("status"),
						JsonName: proto.String("status"),
						Number:   proto.Int32(1),
						Label:    descriptor.FieldDescriptorProto_LABEL_OPTIONAL.Enum(),
						Type:     descriptor.FieldDescriptorProto_TYPE_ENUM.Enum(),
						TypeName: proto.String(".billing.Response.Status"),
					},
					scalarField("comment", "comment", 2, descriptor.FieldDescriptorProto_TYPE_STRING),
					scalarField("receipt", "receipt", 3, descriptor.FieldDescriptorProto_TYPE_STRING),
				},
				EnumType: []*descriptor.EnumDescriptorProto{
					{
						Name: proto.String("Status"),
						Value: []*descriptor.EnumValueDescriptorProto{
							{Name: proto.String("OK"), Number: proto.Int32(0)},
							{Name: proto.String("FAILED"), Number: proto.Int32(1)},
						},
					},
				},
			},
			{
				Name: proto.String("Coin"),
				Field: []*descriptor.FieldDescriptorProto{
					scalarField("id", "id", 1, descriptor.FieldDescriptorProto_TYPE_INT64),
					scalarField("history", "history", 2, descriptor.FieldDescriptorProto_TYPE_STRING),
					{
						Name:     proto.String("holders"),
						JsonName: proto.String("holders"),
						Number:   proto.Int32(3),
						Label:    descriptor.FieldDescriptorProto_LABEL_REPEATED.Enum(),
						Type:     descriptor.FieldDescriptorProto_TYPE_STRING.Enum(),
					},
				},
			},
		},
		Service: []*descriptor.ServiceDescriptorProto{
			{
				Name: proto.String("Billing"),
				Method: []*descriptor.MethodDescriptorProto{
					{
						Name:            proto.String("ListUsers"),
						InputType:       proto.String(".billing.None"),
						OutputType:      proto.String(".billing.UserProfile"),
						ServerStreaming: proto.Bool(true),
					},
					{
						Name:       proto.String("CoinsEmission"),
						InputType:  proto.String(".billing.EmissionAmount"),
						OutputType: proto.String(".billing.Response"),
					},
					{
						Name:       proto.String("MoveCoins"),
						InputType:  proto.String(".billing.MoveCoinsTransaction"),
						OutputType: proto.String(".billing.Response"),
					},
					{
						Name:       proto.String("LongestHistoryCoin"),
						InputType:  proto.String(".billing.None"),
						OutputType: proto.String(".billing.Coin"),
					},
				},
			},
		},
	}
}

func scalarField(name, jsonName string, number int32, typ descriptor.FieldDescriptorProto_Type) *descriptor.FieldDescriptorProto {
	return &descriptor.FieldDescriptorProto{
		Name:     proto.String(name),
		JsonName: proto.String(jsonName),
		Number:   proto.Int32(number),
		Label:    descriptor.FieldDescriptorProto_LABEL_OPTIONAL.Enum(),
		Type:     typ.Enum(),
	}
}

func compressDescriptor(fd *descriptor.FileDescriptorProto) []byte {
	raw, err := proto.Marshal(fd)
	if err != nil {
		panic(err)
	}

	var buf bytes.Buffer
	w, err := gzip.NewWriterLevel(&buf, gzip.BestCompression)
	if err != nil {
		panic(err)
	}
	if _, err := w.Write(raw); err != nil {
		panic(err)
	}
	if err := w.Close(); err != nil {
		panic(err)
	}
	return buf.Bytes()
}

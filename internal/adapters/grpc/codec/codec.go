// Package codec は hr.v1 サービスで使う JSON の gRPC コーデックを提供します。
//
// メッセージは protoc 生成コードではなく素の Go 構造体のため、
// content-subtype "json" で送受信します。health など proto メッセージを使うサービスは
// 既定の proto コーデックのまま動作します。
package codec

import (
	"fmt"

	json "github.com/goccy/go-json"
	"google.golang.org/grpc/encoding"
)

// Name は content-subtype として使うコーデック名です。
const Name = "json"

func init() {
	encoding.RegisterCodec(JSON{})
}

// JSON は encoding.Codec の JSON 実装です。
type JSON struct{}

// Marshal は v を JSON へ変換します。
func (JSON) Marshal(v any) ([]byte, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("codec: marshal %T: %w", v, err)
	}
	return b, nil
}

// Unmarshal は JSON を v へ変換します。空のペイロードはゼロ値として扱います。
func (JSON) Unmarshal(data []byte, v any) error {
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("codec: unmarshal %T: %w", v, err)
	}
	return nil
}

// Name はコーデック名を返します。
func (JSON) Name() string {
	return Name
}

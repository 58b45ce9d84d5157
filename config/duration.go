package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// Duration 配置文件中的时间段
//
// JSON 中写作 "2s"、"1m30s" 之类的字符串；裸整数按纳秒解释。
// 序列化时总是输出字符串形式。
type Duration time.Duration

// UnmarshalJSON 实现 json.Unmarshaler
func (d *Duration) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		v, err := time.ParseDuration(s)
		if err != nil {
			return fmt.Errorf("%w: duration %q: %v", ErrInvalidConfig, s, err)
		}
		*d = Duration(v)
		return nil
	}

	var ns int64
	if err := json.Unmarshal(data, &ns); err != nil {
		return fmt.Errorf("%w: duration must be a string like \"2s\" or integer nanoseconds", ErrInvalidConfig)
	}
	*d = Duration(ns)
	return nil
}

// MarshalJSON 实现 json.Marshaler
func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// Duration 返回 time.Duration
func (d Duration) Duration() time.Duration { return time.Duration(d) }

// String 返回 "2s" 形式的字符串
func (d Duration) String() string { return time.Duration(d).String() }

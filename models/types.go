package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// StringSlice is a custom type for handling JSON arrays of strings in database.
// It doubles as a value set: Add/Remove return a new slice instead of mutating
// in place, so concurrent readers never see a half-edited set.
type StringSlice []string

// Value implements driver.Valuer interface for database storage
func (ss StringSlice) Value() (driver.Value, error) {
	if ss == nil {
		return nil, nil
	}
	return json.Marshal(ss)
}

// Scan implements sql.Scanner interface for database retrieval
func (ss *StringSlice) Scan(value interface{}) error {
	if value == nil {
		*ss = nil
		return nil
	}

	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, ss)
	case string:
		return json.Unmarshal([]byte(v), ss)
	default:
		return fmt.Errorf("cannot scan %T into StringSlice", value)
	}
}

// GormDataType returns the data type for GORM
func (StringSlice) GormDataType() string {
	return "json"
}

// MarshalJSON implements json.Marshaler interface
func (ss StringSlice) MarshalJSON() ([]byte, error) {
	if ss == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]string(ss))
}

// UnmarshalJSON implements json.Unmarshaler interface
func (ss *StringSlice) UnmarshalJSON(data []byte) error {
	var slice []string
	if err := json.Unmarshal(data, &slice); err != nil {
		return err
	}
	*ss = StringSlice(slice)
	return nil
}

// Contains reports whether v is a member of the set.
func (ss StringSlice) Contains(v string) bool {
	for _, s := range ss {
		if s == v {
			return true
		}
	}
	return false
}

// Add returns a new set including v. Adding an existing member is a no-op.
func (ss StringSlice) Add(v string) StringSlice {
	if ss.Contains(v) {
		return ss
	}
	out := make(StringSlice, 0, len(ss)+1)
	out = append(out, ss...)
	return append(out, v)
}

// Remove returns a new set without v.
func (ss StringSlice) Remove(v string) StringSlice {
	out := make(StringSlice, 0, len(ss))
	for _, s := range ss {
		if s != v {
			out = append(out, s)
		}
	}
	return out
}

// CommentList stores a post's comments as an ordered JSON array. Insertion
// order is the display order.
type CommentList []Comment

func (cl CommentList) Value() (driver.Value, error) {
	if cl == nil {
		return nil, nil
	}
	return json.Marshal(cl)
}

func (cl *CommentList) Scan(value interface{}) error {
	if value == nil {
		*cl = nil
		return nil
	}

	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, cl)
	case string:
		return json.Unmarshal([]byte(v), cl)
	default:
		return fmt.Errorf("cannot scan %T into CommentList", value)
	}
}

func (CommentList) GormDataType() string {
	return "json"
}

func (cl CommentList) MarshalJSON() ([]byte, error) {
	if cl == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]Comment(cl))
}

func (cl *CommentList) UnmarshalJSON(data []byte) error {
	var list []Comment
	if err := json.Unmarshal(data, &list); err != nil {
		return err
	}
	*cl = CommentList(list)
	return nil
}

// ResourceList stores a learning plan's resources as a JSON array.
type ResourceList []Resource

func (rl ResourceList) Value() (driver.Value, error) {
	if rl == nil {
		return nil, nil
	}
	return json.Marshal(rl)
}

func (rl *ResourceList) Scan(value interface{}) error {
	if value == nil {
		*rl = nil
		return nil
	}

	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, rl)
	case string:
		return json.Unmarshal([]byte(v), rl)
	default:
		return fmt.Errorf("cannot scan %T into ResourceList", value)
	}
}

func (ResourceList) GormDataType() string {
	return "json"
}

// WeekList stores a learning plan's weekly schedule as a JSON array.
type WeekList []Week

func (wl WeekList) Value() (driver.Value, error) {
	if wl == nil {
		return nil, nil
	}
	return json.Marshal(wl)
}

func (wl *WeekList) Scan(value interface{}) error {
	if value == nil {
		*wl = nil
		return nil
	}

	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, wl)
	case string:
		return json.Unmarshal([]byte(v), wl)
	default:
		return fmt.Errorf("cannot scan %T into WeekList", value)
	}
}

func (WeekList) GormDataType() string {
	return "json"
}

package domain

// Value is a decoded JSON value. It is one of:
//
//   - *Object for JSON objects (member order preserved)
//   - []Value for JSON arrays
//   - string
//   - Number for numeric literals
//   - bool
//   - nil for JSON null
type Value any

// Number holds a JSON number as its literal text so values survive a
// decode/encode round trip unchanged.
type Number string

// Member is a single key/value pair of an Object.
type Member struct {
	Key   string
	Value Value
}

// Object is a JSON object that remembers the order of its members.
type Object struct {
	members []Member
}

// NewObject creates an object from the given members, in order.
// Later duplicates of a key replace the earlier value in place.
func NewObject(members ...Member) *Object {
	o := &Object{members: make([]Member, 0, len(members))}
	for _, m := range members {
		o.Set(m.Key, m.Value)
	}
	return o
}

// Len returns the number of members.
func (o *Object) Len() int {
	if o == nil {
		return 0
	}
	return len(o.members)
}

// Members returns the members in order. The slice must not be modified.
func (o *Object) Members() []Member {
	if o == nil {
		return nil
	}
	return o.members
}

// Keys returns the member keys in order.
func (o *Object) Keys() []string {
	keys := make([]string, 0, o.Len())
	for _, m := range o.Members() {
		keys = append(keys, m.Key)
	}
	return keys
}

// Get returns the value stored under key.
func (o *Object) Get(key string) (Value, bool) {
	for _, m := range o.Members() {
		if m.Key == key {
			return m.Value, true
		}
	}
	return nil, false
}

// Has reports whether key is present.
func (o *Object) Has(key string) bool {
	_, ok := o.Get(key)
	return ok
}

// Set replaces the value under key, or appends a new member.
func (o *Object) Set(key string, value Value) {
	for i := range o.members {
		if o.members[i].Key == key {
			o.members[i].Value = value
			return
		}
	}
	o.members = append(o.members, Member{Key: key, Value: value})
}

// Delete removes key. It reports whether the key was present.
func (o *Object) Delete(key string) bool {
	for i := range o.members {
		if o.members[i].Key == key {
			o.members = append(o.members[:i], o.members[i+1:]...)
			return true
		}
	}
	return false
}

// GetObject returns the nested object under key, if any.
func (o *Object) GetObject(key string) (*Object, bool) {
	v, ok := o.Get(key)
	if !ok {
		return nil, false
	}
	obj, ok := v.(*Object)
	return obj, ok && obj != nil
}

// GetString returns the string under key, if any.
func (o *Object) GetString(key string) (string, bool) {
	v, ok := o.Get(key)
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// Clone returns a deep copy of the object.
func (o *Object) Clone() *Object {
	if o == nil {
		return nil
	}
	out := &Object{members: make([]Member, len(o.members))}
	for i, m := range o.members {
		out.members[i] = Member{Key: m.Key, Value: CloneValue(m.Value)}
	}
	return out
}

// CloneValue returns a deep copy of v.
func CloneValue(v Value) Value {
	switch t := v.(type) {
	case *Object:
		return t.Clone()
	case []Value:
		out := make([]Value, len(t))
		for i, item := range t {
			out[i] = CloneValue(item)
		}
		return out
	default:
		return v
	}
}

// Lookup walks a chain of object keys starting at v.
func Lookup(v Value, path ...string) (Value, bool) {
	cur := v
	for _, key := range path {
		obj, ok := cur.(*Object)
		if !ok || obj == nil {
			return nil, false
		}
		cur, ok = obj.Get(key)
		if !ok {
			return nil, false
		}
	}
	return cur, true
}

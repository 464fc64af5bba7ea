package handlers

import (
	"bytes"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"log"
	"net/http"
	"sort"
	"strings"
)

// respond пишет data под корневым ключом rootName: JSON по умолчанию,
// XML если клиент прислал Accept: application/xml.
func respond(w http.ResponseWriter, r *http.Request, status int, rootName string, data interface{}) {
	if wantsXML(r) {
		body, err := toXML(rootName, data)
		if err != nil {
			log.Printf("❌ Error encoding XML response: %v", err)
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/xml; charset=utf-8")
		w.WriteHeader(status)
		w.Write(body)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	enc := json.NewEncoder(w)
	enc.SetIndent("", "\t")
	if err := enc.Encode(map[string]interface{}{rootName: data}); err != nil {
		log.Printf("❌ Error encoding response: %v", err)
	}
}

func respondError(w http.ResponseWriter, r *http.Request, status int, message string) {
	if wantsXML(r) {
		respond(w, r, status, "error", map[string]string{"message": message})
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(map[string]string{"message": message}); err != nil {
		log.Printf("❌ Error encoding response: %v", err)
	}
}

func wantsXML(r *http.Request) bool {
	accept := r.Header.Get("Accept")
	return strings.Contains(accept, "application/xml") && !strings.Contains(accept, "application/json")
}

// toXML converts data to XML through its JSON form: objects become elements
// named after their keys (sorted), array entries become <item> elements.
func toXML(rootName string, data interface{}) ([]byte, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var tree interface{}
	if err := dec.Decode(&tree); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	buf.WriteString(xml.Header)

	enc := xml.NewEncoder(&buf)
	enc.Indent("", "\t")
	if err := encodeElement(enc, rootName, tree); err != nil {
		return nil, err
	}
	if err := enc.Flush(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func encodeElement(enc *xml.Encoder, name string, value interface{}) error {
	start := xml.StartElement{Name: xml.Name{Local: name}}
	if err := enc.EncodeToken(start); err != nil {
		return err
	}

	switch v := value.(type) {
	case map[string]interface{}:
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			if err := encodeElement(enc, k, v[k]); err != nil {
				return err
			}
		}
	case []interface{}:
		for _, item := range v {
			if err := encodeElement(enc, "item", item); err != nil {
				return err
			}
		}
	case nil:
		// пустой элемент
	default:
		if err := enc.EncodeToken(xml.CharData(fmt.Sprint(v))); err != nil {
			return err
		}
	}

	return enc.EncodeToken(start.End())
}

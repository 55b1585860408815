// SPDX-License-Identifier: Apache-2.0

package main

import (
	"encoding/asn1"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"text/template"
)

var namesToOids = []struct {
	name string
	oid  string
}{
	{"OID_RSA_ENCRYPTION", "1.2.840.113549.1.1.1"},
	{"OID_SHA1_RSA", "1.2.840.113549.1.1.5"},
	{"OID_SHA256_RSA", "1.2.840.113549.1.1.11"},
	{"OID_ECDSA_SHA256", "1.2.840.10045.4.3.2"},
	{"OID_SHA256", "2.16.840.1.101.3.4.2.1"},
	{"OID_EXTENSION_REQUEST", "1.2.840.113549.1.9.14"},

	// Microsoft enrollment attributes, see MS-WCCE § 2.2.2.7
	{"OID_ENROLLMENT_CSP_PROVIDER", "1.3.6.1.4.1.311.13.2.2"},
	{"OID_ENROLLMENT_OS_VERSION", "1.3.6.1.4.1.311.13.2.3"},
}

var codeTemplate = `// SPDX-License-Identifier: Apache-2.0

package aadinternals

// GENERATED CODE: DO NOT EDIT

var knownOids = []struct {
	id        KnownOid
	name      string
	oidString string
	oid       Oid
}{
{{range .}}
	// {{.Oid.S}}
	{ {{.Name}},
		"{{.Name}}",
		"{{.Oid.S}}",
		[]byte{ {{bytesFormat .Oid.B}} }},
{{end}}
}
`

type oid struct {
	S string
	B []byte
}

type tmplParam struct {
	Name string
	Oid  oid
}

func main() {
	output := flag.String("o", "", "output file name")
	flag.Parse()

	params := makeParams()

	funcs := template.FuncMap{
		"bytesFormat": bytesFormat,
	}

	fh := os.Stdout
	var err error
	if *output != "" {
		fh, err = os.Create(*output)
		if err != nil {
			log.Fatal(err)
		}
	}
	defer func() {
		if *output != "" {
			fh.Close()
		}
	}()

	var t = template.Must(template.New("code").Funcs(funcs).Parse(codeTemplate))

	if err := t.Execute(fh, params); err != nil {
		log.Fatal(err)
	}
}

func makeParams() []tmplParam {
	params := make([]tmplParam, len(namesToOids))

	// marshal the OIDs to DER encoding and strip the two byte header
	for i, entry := range namesToOids {
		objId := stringToOid(entry.oid)
		enc, err := asn1.Marshal(objId)
		if err != nil {
			panic(fmt.Errorf("parsing %s: %w", objId, err))
		}

		params[i] = tmplParam{
			Name: entry.name,
			Oid:  oid{S: entry.oid, B: enc[2:]},
		}
	}

	return params
}

func bytesFormat(b []byte) string {
	strs := make([]string, len(b))
	for i, s := range b {
		strs[i] = fmt.Sprintf("0x%02x", s)
	}
	return strings.Join(strs, ", ")
}

func stringToOid(s string) asn1.ObjectIdentifier {
	elms := strings.Split(s, ".")

	oid := make(asn1.ObjectIdentifier, len(elms))

	for i, elm := range elms {
		j, err := strconv.ParseUint(elm, 10, 32)
		if err != nil {
			panic(err)
		}

		oid[i] = int(j)
	}

	return oid
}

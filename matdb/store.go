// Copyright 2016 The Goupil Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package matdb

import (
	"bytes"
	"database/sql"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/kvernet/goupil/phys"

	_ "modernc.org/sqlite" // pure go sqlite driver
)

// The cache layout is one row per table: (material, kind, payload) where
// the payload is the gob encoding of the table and the kind identifies it;
// e.g. "absorption", "rayleigh/ff" or "compton/cdf/Adjoint"

const cacheSchema = `CREATE TABLE IF NOT EXISTS goupil_tables (
	material TEXT NOT NULL,
	kind     TEXT NOT NULL,
	payload  BLOB NOT NULL,
	PRIMARY KEY (material, kind)
)`

// SaveCache writes every computed table of the registry to a sqlite file,
// replacing previous content for the same (material, kind) pairs. Reloading
// through LoadCache reproduces the tables exactly
func (o *Registry) SaveCache(path string) error {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return chk.Err("cannot open table cache %q: %v", path, err)
	}
	defer db.Close()
	if _, err := db.Exec(cacheSchema); err != nil {
		return chk.Err("cannot create table cache schema: %v", err)
	}

	put := func(material, kind string, table interface {
		Encode(io.Encoder) error
	}) error {
		var buf bytes.Buffer
		if err := table.Encode(io.NewEncoder(&buf, "gob")); err != nil {
			return chk.Err("cannot encode table %s/%s: %v", material, kind, err)
		}
		_, err := db.Exec(
			`INSERT OR REPLACE INTO goupil_tables (material, kind, payload) VALUES (?, ?, ?)`,
			material, kind, buf.Bytes(),
		)
		if err != nil {
			return chk.Err("cannot store table %s/%s: %v", material, kind, err)
		}
		return nil
	}

	for _, name := range o.names {
		rec := o.records[name]
		if rec.absorption != nil {
			if err := put(name, "absorption", rec.absorption); err != nil {
				return err
			}
		}
		if rec.rayleighCS != nil {
			if err := put(name, "rayleigh/cs", rec.rayleighCS); err != nil {
				return err
			}
		}
		if rec.rayleighFF != nil {
			if err := put(name, "rayleigh/ff", rec.rayleighFF); err != nil {
				return err
			}
		}
		for mode, t := range rec.compton {
			if t.cs != nil {
				if err := put(name, "compton/cs/"+mode.String(), t.cs); err != nil {
					return err
				}
			}
			if t.cdf != nil {
				if err := put(name, "compton/cdf/"+mode.String(), t.cdf); err != nil {
					return err
				}
			}
			if t.icdf != nil {
				if err := put(name, "compton/icdf/"+mode.String(), t.icdf); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// LoadCache reads previously saved tables into the registry. Only tables of
// registered materials are loaded; rows for unknown materials are ignored.
// Loaded tables are bound to their owning records
func (o *Registry) LoadCache(path string) error {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return chk.Err("cannot open table cache %q: %v", path, err)
	}
	defer db.Close()

	rows, err := db.Query(`SELECT material, kind, payload FROM goupil_tables`)
	if err != nil {
		return chk.Err("cannot read table cache %q: %v", path, err)
	}
	defer rows.Close()

	for rows.Next() {
		var material, kind string
		var payload []byte
		if err := rows.Scan(&material, &kind, &payload); err != nil {
			return chk.Err("cannot scan table cache row: %v", err)
		}
		rec, ok := o.records[material]
		if !ok {
			continue
		}
		if err := o.loadTable(rec, kind, payload); err != nil {
			return err
		}
	}
	return rows.Err()
}

func (o *Registry) loadTable(rec *Record, kind string, payload []byte) error {
	dec := io.NewDecoder(bytes.NewReader(payload), "gob")
	switch {
	case kind == "absorption":
		t := &CrossSection{rec: rec}
		if err := t.Decode(dec); err != nil {
			return err
		}
		rec.absorption = t
	case kind == "rayleigh/cs":
		t := &CrossSection{rec: rec}
		if err := t.Decode(dec); err != nil {
			return err
		}
		rec.rayleighCS = t
	case kind == "rayleigh/ff":
		t := &FormFactor{rec: rec}
		if err := t.Decode(dec); err != nil {
			return err
		}
		rec.rayleighFF = t
	case strings.HasPrefix(kind, "compton/"):
		part := strings.Split(kind, "/")
		if len(part) != 3 {
			return chk.Err("bad table kind %q in cache", kind)
		}
		mode, err := phys.ParseComptonMode(part[2])
		if err != nil {
			return err
		}
		t, ok := rec.compton[mode]
		if !ok {
			t = &comptonTables{}
			rec.compton[mode] = t
		}
		switch part[1] {
		case "cs":
			tab := &CrossSection{rec: rec}
			if err := tab.Decode(dec); err != nil {
				return err
			}
			t.cs = tab
		case "cdf":
			tab := &DistFunc{rec: rec}
			if err := tab.Decode(dec); err != nil {
				return err
			}
			t.cdf = tab
		case "icdf":
			tab := &InverseDistFunc{rec: rec}
			if err := tab.Decode(dec); err != nil {
				return err
			}
			t.icdf = tab
		default:
			return chk.Err("bad table kind %q in cache", kind)
		}
	default:
		return chk.Err("bad table kind %q in cache", kind)
	}
	return nil
}

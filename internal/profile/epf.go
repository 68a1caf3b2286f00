// Copyright 2026 The Saveactions Authors
// SPDX-License-Identifier: MIT

package profile

import (
	"bufio"
	"bytes"
	"fmt"
	"strings"

	"github.com/davetashner/saveactions/internal/action"
)

// epfKeys maps Eclipse save-participant preference keys to actions. Keys are
// matched on the final path segment of the preference name.
var epfKeys = map[string]action.Action{
	"editor_save_participant_org.eclipse.jdt.ui.postsavelistener.cleanup": action.Activate,
	"sp_cleanup.organize_imports":                                          action.OrganizeImports,
	"sp_cleanup.format_source_code":                                        action.Reformat,
	"sp_cleanup.format_source_code_changes_only":                           action.ReformatChangedCode,
	"sp_cleanup.sort_members":                                              action.Rearrange,
	"sp_cleanup.make_private_fields_final":                                 action.FieldCanBeFinal,
	"sp_cleanup.make_local_variable_final":                                 action.LocalCanBeFinal,
	"sp_cleanup.use_this_for_non_static_field_access":                      action.UnqualifiedFieldAccess,
	"sp_cleanup.use_this_for_non_static_method_access":                     action.UnqualifiedMethodAccess,
	"sp_cleanup.qualify_static_member_accesses_with_declaring_class":       action.UnqualifiedStaticMemberAccess,
	"sp_cleanup.add_missing_override_annotations":                          action.MissingOverrideAnnotation,
	"sp_cleanup.use_blocks":                                                action.UseBlocks,
	"sp_cleanup.add_generated_serial_version_id":                           action.GenerateSerialVersionUID,
	"sp_cleanup.remove_redundant_type_arguments":                           action.ExplicitTypeCanBeDiamond,
}

// parseEPF reads an Eclipse preference export. The format is Java
// properties: "key=value" or "key:value" lines, "#" and "!" comments.
func parseEPF(data []byte) (map[action.Action]bool, error) {
	out := make(map[action.Action]bool)
	sc := bufio.NewScanner(bytes.NewReader(data))
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || text[0] == '#' || text[0] == '!' {
			continue
		}
		i := strings.IndexAny(text, "=:")
		if i <= 0 {
			return nil, fmt.Errorf("line %d: expected key=value", line)
		}
		key := strings.TrimSpace(text[:i])
		if j := strings.LastIndex(key, "/"); j >= 0 {
			key = key[j+1:]
		}
		a, ok := epfKeys[key]
		if !ok {
			continue
		}
		out[a] = strings.EqualFold(strings.TrimSpace(text[i+1:]), "true")
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	// Eclipse expresses "format changed code only" as format_source_code plus
	// the changes_only flag; only one of the two actions may be on.
	if out[action.ReformatChangedCode] {
		if on, ok := out[action.Reformat]; ok && !on {
			out[action.ReformatChangedCode] = false
		}
		out[action.Reformat] = false
	}
	return out, nil
}

package linter

// nonVolatileBuiltins is the shipped set of builtin functions whose
// volatility is stable or immutable, derived from
// `select proname from pg_proc where provolatile <> 'v'`. A zero-argument
// call to one of these is a safe column default: no table rewrite.
var nonVolatileBuiltins = map[string]bool{
	"abs":                    true,
	"acos":                   true,
	"age":                    true,
	"array_length":           true,
	"array_lower":            true,
	"array_upper":            true,
	"ascii":                  true,
	"asin":                   true,
	"atan":                   true,
	"atan2":                  true,
	"bit_length":             true,
	"btrim":                  true,
	"cbrt":                   true,
	"ceil":                   true,
	"ceiling":                true,
	"char_length":            true,
	"character_length":       true,
	"chr":                    true,
	"coalesce":               true,
	"concat":                 true,
	"concat_ws":              true,
	"cos":                    true,
	"cot":                    true,
	"current_database":       true,
	"current_query":          true,
	"current_schema":         true,
	"current_schemas":        true,
	"current_setting":        true,
	"current_user":           true,
	"date_part":              true,
	"date_trunc":             true,
	"decode":                 true,
	"degrees":                true,
	"div":                    true,
	"encode":                 true,
	"exp":                    true,
	"factorial":              true,
	"floor":                  true,
	"format":                 true,
	"get_bit":                true,
	"get_byte":               true,
	"inet_client_addr":       true,
	"inet_client_port":       true,
	"inet_server_addr":       true,
	"inet_server_port":       true,
	"initcap":                true,
	"isfinite":               true,
	"justify_days":           true,
	"justify_hours":          true,
	"justify_interval":       true,
	"left":                   true,
	"length":                 true,
	"ln":                     true,
	"log":                    true,
	"lower":                  true,
	"lpad":                   true,
	"ltrim":                  true,
	"make_date":              true,
	"make_interval":          true,
	"make_time":              true,
	"make_timestamp":         true,
	"make_timestamptz":       true,
	"md5":                    true,
	"mod":                    true,
	"now":                    true,
	"num_nonnulls":           true,
	"num_nulls":              true,
	"octet_length":           true,
	"overlay":                true,
	"pg_backend_pid":         true,
	"pg_client_encoding":     true,
	"pg_conf_load_time":      true,
	"pg_encoding_to_char":    true,
	"pg_get_userbyid":        true,
	"pg_jit_available":       true,
	"pg_postmaster_start_time": true,
	"pg_trigger_depth":       true,
	"pi":                     true,
	"position":               true,
	"power":                  true,
	"quote_ident":            true,
	"quote_literal":          true,
	"quote_nullable":         true,
	"radians":                true,
	"regexp_match":           true,
	"regexp_matches":         true,
	"regexp_replace":         true,
	"regexp_split_to_array":  true,
	"regexp_split_to_table":  true,
	"repeat":                 true,
	"replace":                true,
	"reverse":                true,
	"right":                  true,
	"round":                  true,
	"rpad":                   true,
	"rtrim":                  true,
	"scale":                  true,
	"session_user":           true,
	"sign":                   true,
	"sin":                    true,
	"split_part":             true,
	"sqrt":                   true,
	"statement_timestamp":    true,
	"string_to_array":        true,
	"strpos":                 true,
	"substr":                 true,
	"substring":              true,
	"tan":                    true,
	"to_ascii":               true,
	"to_char":                true,
	"to_date":                true,
	"to_hex":                 true,
	"to_number":              true,
	"to_timestamp":           true,
	"transaction_timestamp":  true,
	"translate":              true,
	"trim":                   true,
	"trunc":                  true,
	"upper":                  true,
	"version":                true,
	"width_bucket":           true,
}

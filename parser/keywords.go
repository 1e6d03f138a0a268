package parser

// KeywordCategory mirrors the categories of the PostgreSQL keyword list
// header. The category decides where a keyword may appear without quoting.
type KeywordCategory uint8

const (
	Unreserved KeywordCategory = iota
	Reserved
	ColName
	TypeFuncName
)

// KeywordLabel reports whether the keyword may be used as a column alias
// without a preceding AS.
type KeywordLabel uint8

const (
	BareLabel KeywordLabel = iota
	AsLabel
)

type keywordInfo struct {
	kind     SyntaxKind
	category KeywordCategory
	label    KeywordLabel
}

// keywords maps every recognized keyword, lowercased, to its kind, category,
// and label. Derived from the PostgreSQL keyword list; keep sorted within each
// category block when adding entries.
var keywords = map[string]keywordInfo{
	// Reserved.
	"all":               {ALL_KW, Reserved, BareLabel},
	"analyse":           {ANALYZE_KW, Reserved, BareLabel},
	"analyze":           {ANALYZE_KW, Reserved, BareLabel},
	"and":               {AND_KW, Reserved, BareLabel},
	"any":               {ANY_KW, Reserved, BareLabel},
	"array":             {ARRAY_KW, Reserved, BareLabel},
	"as":                {AS_KW, Reserved, AsLabel},
	"asc":               {ASC_KW, Reserved, BareLabel},
	"asymmetric":        {ASYMMETRIC_KW, Reserved, BareLabel},
	"both":              {BOTH_KW, Reserved, BareLabel},
	"case":              {CASE_KW, Reserved, BareLabel},
	"cast":              {CAST_KW, Reserved, BareLabel},
	"check":             {CHECK_KW, Reserved, BareLabel},
	"collate":           {COLLATE_KW, Reserved, AsLabel},
	"column":            {COLUMN_KW, Reserved, BareLabel},
	"constraint":        {CONSTRAINT_KW, Reserved, BareLabel},
	"create":            {CREATE_KW, Reserved, AsLabel},
	"current_catalog":   {CURRENT_CATALOG_KW, Reserved, BareLabel},
	"current_date":      {CURRENT_DATE_KW, Reserved, BareLabel},
	"current_role":      {CURRENT_ROLE_KW, Reserved, BareLabel},
	"current_time":      {CURRENT_TIME_KW, Reserved, BareLabel},
	"current_timestamp": {CURRENT_TIMESTAMP_KW, Reserved, BareLabel},
	"current_user":      {CURRENT_USER_KW, Reserved, BareLabel},
	"default":           {DEFAULT_KW, Reserved, BareLabel},
	"deferrable":        {DEFERRABLE_KW, Reserved, BareLabel},
	"desc":              {DESC_KW, Reserved, BareLabel},
	"distinct":          {DISTINCT_KW, Reserved, BareLabel},
	"do":                {DO_KW, Reserved, BareLabel},
	"else":              {ELSE_KW, Reserved, BareLabel},
	"end":               {END_KW, Reserved, BareLabel},
	"except":            {EXCEPT_KW, Reserved, AsLabel},
	"false":             {FALSE_KW, Reserved, BareLabel},
	"fetch":             {FETCH_KW, Reserved, AsLabel},
	"for":               {FOR_KW, Reserved, AsLabel},
	"foreign":           {FOREIGN_KW, Reserved, BareLabel},
	"from":              {FROM_KW, Reserved, AsLabel},
	"grant":             {GRANT_KW, Reserved, AsLabel},
	"group":             {GROUP_KW, Reserved, AsLabel},
	"having":            {HAVING_KW, Reserved, AsLabel},
	"in":                {IN_KW, Reserved, BareLabel},
	"initially":         {INITIALLY_KW, Reserved, BareLabel},
	"intersect":         {INTERSECT_KW, Reserved, AsLabel},
	"into":              {INTO_KW, Reserved, AsLabel},
	"lateral":           {LATERAL_KW, Reserved, BareLabel},
	"leading":           {LEADING_KW, Reserved, BareLabel},
	"limit":             {LIMIT_KW, Reserved, AsLabel},
	"localtime":         {LOCALTIME_KW, Reserved, BareLabel},
	"localtimestamp":    {LOCALTIMESTAMP_KW, Reserved, BareLabel},
	"not":               {NOT_KW, Reserved, BareLabel},
	"null":              {NULL_KW, Reserved, BareLabel},
	"offset":            {OFFSET_KW, Reserved, AsLabel},
	"on":                {ON_KW, Reserved, AsLabel},
	"only":              {ONLY_KW, Reserved, BareLabel},
	"or":                {OR_KW, Reserved, BareLabel},
	"order":             {ORDER_KW, Reserved, AsLabel},
	"placing":           {PLACING_KW, Reserved, BareLabel},
	"primary":           {PRIMARY_KW, Reserved, BareLabel},
	"references":        {REFERENCES_KW, Reserved, BareLabel},
	"returning":         {RETURNING_KW, Reserved, AsLabel},
	"select":            {SELECT_KW, Reserved, BareLabel},
	"session_user":      {SESSION_USER_KW, Reserved, BareLabel},
	"some":              {SOME_KW, Reserved, BareLabel},
	"symmetric":         {SYMMETRIC_KW, Reserved, BareLabel},
	"system_user":       {SYSTEM_USER_KW, Reserved, BareLabel},
	"table":             {TABLE_KW, Reserved, BareLabel},
	"then":              {THEN_KW, Reserved, BareLabel},
	"to":                {TO_KW, Reserved, AsLabel},
	"trailing":          {TRAILING_KW, Reserved, BareLabel},
	"true":              {TRUE_KW, Reserved, BareLabel},
	"union":             {UNION_KW, Reserved, AsLabel},
	"unique":            {UNIQUE_KW, Reserved, BareLabel},
	"user":              {USER_KW, Reserved, BareLabel},
	"using":             {USING_KW, Reserved, BareLabel},
	"variadic":          {VARIADIC_KW, Reserved, BareLabel},
	"when":              {WHEN_KW, Reserved, BareLabel},
	"where":             {WHERE_KW, Reserved, AsLabel},
	"window":            {WINDOW_KW, Reserved, AsLabel},
	"with":              {WITH_KW, Reserved, AsLabel},

	// Type or function name.
	"authorization": {AUTHORIZATION_KW, TypeFuncName, BareLabel},
	"binary":        {BINARY_KW, TypeFuncName, BareLabel},
	"collation":     {COLLATION_KW, TypeFuncName, BareLabel},
	"concurrently":  {CONCURRENTLY_KW, TypeFuncName, BareLabel},
	"cross":         {CROSS_KW, TypeFuncName, BareLabel},
	"current_schema": {CURRENT_SCHEMA_KW, TypeFuncName, BareLabel},
	"freeze":        {FREEZE_KW, TypeFuncName, BareLabel},
	"full":          {FULL_KW, TypeFuncName, BareLabel},
	"ilike":         {ILIKE_KW, TypeFuncName, BareLabel},
	"inner":         {INNER_KW, TypeFuncName, BareLabel},
	"is":            {IS_KW, TypeFuncName, BareLabel},
	"isnull":        {ISNULL_KW, TypeFuncName, AsLabel},
	"join":          {JOIN_KW, TypeFuncName, BareLabel},
	"left":          {LEFT_KW, TypeFuncName, BareLabel},
	"like":          {LIKE_KW, TypeFuncName, BareLabel},
	"natural":       {NATURAL_KW, TypeFuncName, BareLabel},
	"notnull":       {NOTNULL_KW, TypeFuncName, AsLabel},
	"outer":         {OUTER_KW, TypeFuncName, BareLabel},
	"overlaps":      {OVERLAPS_KW, TypeFuncName, AsLabel},
	"right":         {RIGHT_KW, TypeFuncName, BareLabel},
	"similar":       {SIMILAR_KW, TypeFuncName, BareLabel},
	"tablesample":   {TABLESAMPLE_KW, TypeFuncName, BareLabel},
	"verbose":       {VERBOSE_KW, TypeFuncName, BareLabel},

	// Column name.
	"between":   {BETWEEN_KW, ColName, BareLabel},
	"bigint":    {BIGINT_KW, ColName, BareLabel},
	"bit":       {BIT_KW, ColName, BareLabel},
	"boolean":   {BOOLEAN_KW, ColName, BareLabel},
	"char":      {CHAR_KW, ColName, AsLabel},
	"character": {CHARACTER_KW, ColName, AsLabel},
	"coalesce":  {COALESCE_KW, ColName, BareLabel},
	"dec":       {DEC_KW, ColName, BareLabel},
	"decimal":   {DECIMAL_KW, ColName, BareLabel},
	"double":    {DOUBLE_KW, ColName, BareLabel},
	"exists":    {EXISTS_KW, ColName, BareLabel},
	"extract":   {EXTRACT_KW, ColName, BareLabel},
	"float":     {FLOAT_KW, ColName, BareLabel},
	"greatest":  {GREATEST_KW, ColName, BareLabel},
	"grouping":  {GROUPING_KW, ColName, BareLabel},
	"int":       {INT_KW, ColName, BareLabel},
	"integer":   {INTEGER_KW, ColName, BareLabel},
	"interval":  {INTERVAL_KW, ColName, BareLabel},
	"json":      {JSON_KW, ColName, BareLabel},
	"least":     {LEAST_KW, ColName, BareLabel},
	"national":  {NATIONAL_KW, ColName, BareLabel},
	"nchar":     {NCHAR_KW, ColName, AsLabel},
	"none":      {NONE_KW, ColName, BareLabel},
	"nullif":    {NULLIF_KW, ColName, BareLabel},
	"numeric":   {NUMERIC_KW, ColName, BareLabel},
	"out":       {OUT_KW, ColName, BareLabel},
	"overlay":   {OVERLAY_KW, ColName, BareLabel},
	"position":  {POSITION_KW, ColName, BareLabel},
	"precision": {PRECISION_KW, ColName, AsLabel},
	"real":      {REAL_KW, ColName, BareLabel},
	"row":       {ROW_KW, ColName, BareLabel},
	"setof":     {SETOF_KW, ColName, BareLabel},
	"smallint":  {SMALLINT_KW, ColName, BareLabel},
	"substring": {SUBSTRING_KW, ColName, BareLabel},
	"time":      {TIME_KW, ColName, BareLabel},
	"timestamp": {TIMESTAMP_KW, ColName, BareLabel},
	"treat":     {TREAT_KW, ColName, BareLabel},
	"trim":      {TRIM_KW, ColName, BareLabel},
	"values":    {VALUES_KW, ColName, BareLabel},
	"varchar":   {VARCHAR_KW, ColName, AsLabel},

	// Unreserved.
	"abort":         {ABORT_KW, Unreserved, BareLabel},
	"action":        {ACTION_KW, Unreserved, BareLabel},
	"add":           {ADD_KW, Unreserved, BareLabel},
	"after":         {AFTER_KW, Unreserved, BareLabel},
	"alter":         {ALTER_KW, Unreserved, BareLabel},
	"always":        {ALWAYS_KW, Unreserved, BareLabel},
	"attach":        {ATTACH_KW, Unreserved, BareLabel},
	"before":        {BEFORE_KW, Unreserved, BareLabel},
	"begin":         {BEGIN_KW, Unreserved, BareLabel},
	"by":            {BY_KW, Unreserved, BareLabel},
	"cache":         {CACHE_KW, Unreserved, BareLabel},
	"called":        {CALLED_KW, Unreserved, BareLabel},
	"cascade":       {CASCADE_KW, Unreserved, BareLabel},
	"cascaded":      {CASCADED_KW, Unreserved, BareLabel},
	"chain":         {CHAIN_KW, Unreserved, BareLabel},
	"columns":       {COLUMNS_KW, Unreserved, BareLabel},
	"comment":       {COMMENT_KW, Unreserved, BareLabel},
	"commit":        {COMMIT_KW, Unreserved, BareLabel},
	"constraints":   {CONSTRAINTS_KW, Unreserved, BareLabel},
	"continue":      {CONTINUE_KW, Unreserved, BareLabel},
	"cost":          {COST_KW, Unreserved, BareLabel},
	"cycle":         {CYCLE_KW, Unreserved, BareLabel},
	"data":          {DATA_KW, Unreserved, BareLabel},
	"database":      {DATABASE_KW, Unreserved, BareLabel},
	"day":           {DAY_KW, Unreserved, AsLabel},
	"defaults":      {DEFAULTS_KW, Unreserved, BareLabel},
	"deferred":      {DEFERRED_KW, Unreserved, BareLabel},
	"delete":        {DELETE_KW, Unreserved, BareLabel},
	"detach":        {DETACH_KW, Unreserved, BareLabel},
	"domain":        {DOMAIN_KW, Unreserved, BareLabel},
	"drop":          {DROP_KW, Unreserved, BareLabel},
	"each":          {EACH_KW, Unreserved, BareLabel},
	"enable":        {ENABLE_KW, Unreserved, BareLabel},
	"escape":        {ESCAPE_KW, Unreserved, BareLabel},
	"exclude":       {EXCLUDE_KW, Unreserved, BareLabel},
	"excluding":     {EXCLUDING_KW, Unreserved, BareLabel},
	"execute":       {EXECUTE_KW, Unreserved, BareLabel},
	"expression":    {EXPRESSION_KW, Unreserved, BareLabel},
	"extension":     {EXTENSION_KW, Unreserved, BareLabel},
	"first":         {FIRST_KW, Unreserved, BareLabel},
	"function":      {FUNCTION_KW, Unreserved, BareLabel},
	"generated":     {GENERATED_KW, Unreserved, BareLabel},
	"global":        {GLOBAL_KW, Unreserved, BareLabel},
	"hour":          {HOUR_KW, Unreserved, AsLabel},
	"identity":      {IDENTITY_KW, Unreserved, BareLabel},
	"if":            {IF_KW, Unreserved, BareLabel},
	"immediate":     {IMMEDIATE_KW, Unreserved, BareLabel},
	"immutable":     {IMMUTABLE_KW, Unreserved, BareLabel},
	"include":       {INCLUDE_KW, Unreserved, BareLabel},
	"including":     {INCLUDING_KW, Unreserved, BareLabel},
	"increment":     {INCREMENT_KW, Unreserved, BareLabel},
	"index":         {INDEX_KW, Unreserved, BareLabel},
	"indexes":       {INDEXES_KW, Unreserved, BareLabel},
	"inherit":       {INHERIT_KW, Unreserved, BareLabel},
	"inherits":      {INHERITS_KW, Unreserved, BareLabel},
	"insert":        {INSERT_KW, Unreserved, BareLabel},
	"instead":       {INSTEAD_KW, Unreserved, BareLabel},
	"isolation":     {ISOLATION_KW, Unreserved, BareLabel},
	"key":           {KEY_KW, Unreserved, BareLabel},
	"language":      {LANGUAGE_KW, Unreserved, BareLabel},
	"last":          {LAST_KW, Unreserved, BareLabel},
	"level":         {LEVEL_KW, Unreserved, BareLabel},
	"local":         {LOCAL_KW, Unreserved, BareLabel},
	"locked":        {LOCKED_KW, Unreserved, BareLabel},
	"logged":        {LOGGED_KW, Unreserved, BareLabel},
	"match":         {MATCH_KW, Unreserved, BareLabel},
	"materialized":  {MATERIALIZED_KW, Unreserved, BareLabel},
	"maxvalue":      {MAXVALUE_KW, Unreserved, BareLabel},
	"minute":        {MINUTE_KW, Unreserved, AsLabel},
	"minvalue":      {MINVALUE_KW, Unreserved, BareLabel},
	"month":         {MONTH_KW, Unreserved, AsLabel},
	"name":          {NAME_KW, Unreserved, BareLabel},
	"next":          {NEXT_KW, Unreserved, BareLabel},
	"no":            {NO_KW, Unreserved, BareLabel},
	"nothing":       {NOTHING_KW, Unreserved, BareLabel},
	"nowait":        {NOWAIT_KW, Unreserved, BareLabel},
	"nulls":         {NULLS_KW, Unreserved, BareLabel},
	"of":            {OF_KW, Unreserved, BareLabel},
	"off":           {OFF_KW, Unreserved, BareLabel},
	"option":        {OPTION_KW, Unreserved, BareLabel},
	"options":       {OPTIONS_KW, Unreserved, BareLabel},
	"ordinality":    {ORDINALITY_KW, Unreserved, BareLabel},
	"others":        {OTHERS_KW, Unreserved, BareLabel},
	"owned":         {OWNED_KW, Unreserved, BareLabel},
	"owner":         {OWNER_KW, Unreserved, BareLabel},
	"parallel":      {PARALLEL_KW, Unreserved, BareLabel},
	"partial":       {PARTIAL_KW, Unreserved, BareLabel},
	"partition":     {PARTITION_KW, Unreserved, BareLabel},
	"policy":        {POLICY_KW, Unreserved, BareLabel},
	"preserve":      {PRESERVE_KW, Unreserved, BareLabel},
	"procedure":     {PROCEDURE_KW, Unreserved, BareLabel},
	"range":         {RANGE_KW, Unreserved, BareLabel},
	"rename":        {RENAME_KW, Unreserved, BareLabel},
	"repeatable":    {REPEATABLE_KW, Unreserved, BareLabel},
	"replace":       {REPLACE_KW, Unreserved, BareLabel},
	"replica":       {REPLICA_KW, Unreserved, BareLabel},
	"reset":         {RESET_KW, Unreserved, BareLabel},
	"restart":       {RESTART_KW, Unreserved, BareLabel},
	"restrict":      {RESTRICT_KW, Unreserved, BareLabel},
	"returns":       {RETURNS_KW, Unreserved, BareLabel},
	"role":          {ROLE_KW, Unreserved, BareLabel},
	"rollback":      {ROLLBACK_KW, Unreserved, BareLabel},
	"rows":          {ROWS_KW, Unreserved, BareLabel},
	"rule":          {RULE_KW, Unreserved, BareLabel},
	"savepoint":     {SAVEPOINT_KW, Unreserved, BareLabel},
	"schema":        {SCHEMA_KW, Unreserved, BareLabel},
	"second":        {SECOND_KW, Unreserved, AsLabel},
	"security":      {SECURITY_KW, Unreserved, BareLabel},
	"sequence":      {SEQUENCE_KW, Unreserved, BareLabel},
	"serializable":  {SERIALIZABLE_KW, Unreserved, BareLabel},
	"session":       {SESSION_KW, Unreserved, BareLabel},
	"set":           {SET_KW, Unreserved, BareLabel},
	"share":         {SHARE_KW, Unreserved, BareLabel},
	"show":          {SHOW_KW, Unreserved, BareLabel},
	"simple":        {SIMPLE_KW, Unreserved, BareLabel},
	"skip":          {SKIP_KW, Unreserved, BareLabel},
	"stable":        {STABLE_KW, Unreserved, BareLabel},
	"start":         {START_KW, Unreserved, BareLabel},
	"statement":     {STATEMENT_KW, Unreserved, BareLabel},
	"statistics":    {STATISTICS_KW, Unreserved, BareLabel},
	"storage":       {STORAGE_KW, Unreserved, BareLabel},
	"stored":        {STORED_KW, Unreserved, BareLabel},
	"strict":        {STRICT_KW, Unreserved, BareLabel},
	"tables":        {TABLES_KW, Unreserved, BareLabel},
	"tablespace":    {TABLESPACE_KW, Unreserved, BareLabel},
	"temp":          {TEMP_KW, Unreserved, BareLabel},
	"template":      {TEMPLATE_KW, Unreserved, BareLabel},
	"temporary":     {TEMPORARY_KW, Unreserved, BareLabel},
	"ties":          {TIES_KW, Unreserved, BareLabel},
	"transaction":   {TRANSACTION_KW, Unreserved, BareLabel},
	"trigger":       {TRIGGER_KW, Unreserved, BareLabel},
	"truncate":      {TRUNCATE_KW, Unreserved, BareLabel},
	"type":          {TYPE_KW, Unreserved, BareLabel},
	"unbounded":     {UNBOUNDED_KW, Unreserved, BareLabel},
	"uncommitted":   {UNCOMMITTED_KW, Unreserved, BareLabel},
	"unlogged":      {UNLOGGED_KW, Unreserved, BareLabel},
	"until":         {UNTIL_KW, Unreserved, BareLabel},
	"update":        {UPDATE_KW, Unreserved, BareLabel},
	"vacuum":        {VACUUM_KW, Unreserved, BareLabel},
	"valid":         {VALID_KW, Unreserved, BareLabel},
	"validate":      {VALIDATE_KW, Unreserved, BareLabel},
	"value":         {VALUE_KW, Unreserved, BareLabel},
	"varying":       {VARYING_KW, Unreserved, AsLabel},
	"version":       {VERSION_KW, Unreserved, BareLabel},
	"view":          {VIEW_KW, Unreserved, BareLabel},
	"volatile":      {VOLATILE_KW, Unreserved, BareLabel},
	"within":        {WITHIN_KW, Unreserved, AsLabel},
	"without":       {WITHOUT_KW, Unreserved, AsLabel},
	"work":          {WORK_KW, Unreserved, BareLabel},
	"year":          {YEAR_KW, Unreserved, AsLabel},
	"zone":          {ZONE_KW, Unreserved, BareLabel},
}

// keywordStrings contains the reverse mapping of kind to keyword text.
var keywordStrings = map[SyntaxKind]string{}

// Derived keyword sets, indexed by kind discriminant.
var (
	AllKeywords           TokenSet
	ReservedKeywords      TokenSet
	UnreservedKeywords    TokenSet
	ColumnOrTableKeywords TokenSet
	TypeKeywords          TokenSet
	BareLabelKeywords     TokenSet
)

func init() {
	for str, info := range keywords {
		keywordStrings[info.kind] = str
		AllKeywords.add(info.kind)
		switch info.category {
		case Reserved:
			ReservedKeywords.add(info.kind)
		case Unreserved:
			UnreservedKeywords.add(info.kind)
			ColumnOrTableKeywords.add(info.kind)
			TypeKeywords.add(info.kind)
		case ColName:
			ColumnOrTableKeywords.add(info.kind)
			TypeKeywords.add(info.kind)
		case TypeFuncName:
			TypeKeywords.add(info.kind)
		}
		if info.label == BareLabel {
			BareLabelKeywords.add(info.kind)
		}
	}
	// "analyse" aliases "analyze"; keep the canonical spelling in the
	// reverse table.
	keywordStrings[ANALYZE_KW] = "analyze"
}

// KeywordKind classifies an identifier, case-insensitively. The boolean is
// false for non-keywords.
func KeywordKind(text string) (SyntaxKind, bool) {
	info, ok := keywords[asciiLower(text)]
	if !ok {
		return IDENT, false
	}
	return info.kind, true
}

// KeywordCategoryOf returns the category for a keyword kind.
func KeywordCategoryOf(kind SyntaxKind) (KeywordCategory, bool) {
	s, ok := keywordStrings[kind]
	if !ok {
		return 0, false
	}
	return keywords[s].category, true
}

// KeywordLabelOf returns the alias label for a keyword kind.
func KeywordLabelOf(kind SyntaxKind) (KeywordLabel, bool) {
	s, ok := keywordStrings[kind]
	if !ok {
		return 0, false
	}
	return keywords[s].label, true
}

// KeywordString returns the text for a keyword kind, or "" for other kinds.
func KeywordString(kind SyntaxKind) string {
	return keywordStrings[kind]
}

// asciiLower folds ASCII letters only, matching PostgreSQL's downcasing of
// unquoted identifiers for keyword recognition.
func asciiLower(s string) string {
	hasUpper := false
	for i := 0; i < len(s); i++ {
		if 'A' <= s[i] && s[i] <= 'Z' {
			hasUpper = true
			break
		}
	}
	if !hasUpper {
		return s
	}
	b := make([]byte, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if 'A' <= c && c <= 'Z' {
			c += 'a' - 'A'
		}
		b[i] = c
	}
	return string(b)
}

package parser

// kindNames covers the non-keyword kinds; keyword kinds render through
// KeywordString.
var kindNames = map[SyntaxKind]string{
	TOMBSTONE:            "TOMBSTONE",
	EOF:                  "EOF",
	SEMICOLON:            "SEMICOLON",
	COMMA:                "COMMA",
	L_PAREN:              "L_PAREN",
	R_PAREN:              "R_PAREN",
	L_BRACK:              "L_BRACK",
	R_BRACK:              "R_BRACK",
	DOT:                  "DOT",
	COLON:                "COLON",
	COLONCOLON:           "COLONCOLON",
	EQ:                   "EQ",
	LT:                   "LT",
	GT:                   "GT",
	LT_EQ:                "LT_EQ",
	GT_EQ:                "GT_EQ",
	NEQ:                  "NEQ",
	PLUS:                 "PLUS",
	MINUS:                "MINUS",
	STAR:                 "STAR",
	SLASH:                "SLASH",
	PERCENT:              "PERCENT",
	CARET:                "CARET",
	BANG:                 "BANG",
	TILDE:                "TILDE",
	AMP:                  "AMP",
	PIPE:                 "PIPE",
	QUESTION:             "QUESTION",
	POUND:                "POUND",
	AT:                   "AT",
	BACKTICK:             "BACKTICK",
	CONCAT:               "CONCAT",
	ARROW:                "ARROW",
	ARROW_ARROW:          "ARROW_ARROW",
	POUND_GT:             "POUND_GT",
	POUND_GT_GT:          "POUND_GT_GT",
	POUND_MINUS:          "POUND_MINUS",
	AT_GT:                "AT_GT",
	LT_AT:                "LT_AT",
	AT_AT:                "AT_AT",
	AMP_AMP:              "AMP_AMP",
	TILDE_STAR:           "TILDE_STAR",
	BANG_TILDE:           "BANG_TILDE",
	BANG_TILDE_STAR:      "BANG_TILDE_STAR",
	CUSTOM_OP:            "CUSTOM_OP",
	INT_NUMBER:           "INT_NUMBER",
	FLOAT_NUMBER:         "FLOAT_NUMBER",
	STRING:               "STRING",
	BYTE_STRING:          "BYTE_STRING",
	BIT_STRING:           "BIT_STRING",
	DOLLAR_QUOTED_STRING: "DOLLAR_QUOTED_STRING",
	ESC_STRING:           "ESC_STRING",
	UNICODE_ESC_STRING:   "UNICODE_ESC_STRING",
	PARAM_TOKEN:          "PARAM_TOKEN",
	IDENT:                "IDENT",
	QUOTED_IDENT:         "QUOTED_IDENT",
	ERROR_TOKEN:          "ERROR_TOKEN",
	WHITESPACE:           "WHITESPACE",
	COMMENT:              "COMMENT",

	SOURCE_FILE: "SOURCE_FILE",
	ERROR:       "ERROR",

	NAME:         "NAME",
	NAME_REF:     "NAME_REF",
	PATH:         "PATH",
	PATH_SEGMENT: "PATH_SEGMENT",

	SELECT_STMT:     "SELECT_STMT",
	INSERT_STMT:     "INSERT_STMT",
	UPDATE_STMT:     "UPDATE_STMT",
	DELETE_STMT:     "DELETE_STMT",
	TRUNCATE_STMT:   "TRUNCATE_STMT",
	CREATE_TABLE:    "CREATE_TABLE",
	CREATE_INDEX:    "CREATE_INDEX",
	CREATE_DOMAIN:   "CREATE_DOMAIN",
	CREATE_FUNCTION: "CREATE_FUNCTION",
	CREATE_TYPE:     "CREATE_TYPE",
	CREATE_VIEW:     "CREATE_VIEW",
	CREATE_SCHEMA:   "CREATE_SCHEMA",
	ALTER_TABLE:     "ALTER_TABLE",
	ALTER_DOMAIN:    "ALTER_DOMAIN",
	DROP_TABLE:      "DROP_TABLE",
	DROP_INDEX:      "DROP_INDEX",
	DROP_DATABASE:   "DROP_DATABASE",
	DROP_TYPE:       "DROP_TYPE",
	DROP_TRIGGER:    "DROP_TRIGGER",
	DROP_DOMAIN:     "DROP_DOMAIN",
	BEGIN_STMT:      "BEGIN_STMT",
	COMMIT_STMT:     "COMMIT_STMT",
	ROLLBACK_STMT:   "ROLLBACK_STMT",
	SAVEPOINT_STMT:  "SAVEPOINT_STMT",
	SET_STMT:        "SET_STMT",
	COMMENT_ON_STMT: "COMMENT_ON_STMT",

	WITH_CLAUSE:        "WITH_CLAUSE",
	COMMON_TABLE_EXPR:  "COMMON_TABLE_EXPR",
	SELECT_TARGET_LIST: "SELECT_TARGET_LIST",
	SELECT_TARGET:      "SELECT_TARGET",
	FROM_CLAUSE:        "FROM_CLAUSE",
	FROM_ITEM:          "FROM_ITEM",
	JOIN_CLAUSE:        "JOIN_CLAUSE",
	WHERE_CLAUSE:       "WHERE_CLAUSE",
	GROUP_BY_CLAUSE:    "GROUP_BY_CLAUSE",
	HAVING_CLAUSE:      "HAVING_CLAUSE",
	ORDER_BY_CLAUSE:    "ORDER_BY_CLAUSE",
	SORT_EXPR:          "SORT_EXPR",
	LIMIT_CLAUSE:       "LIMIT_CLAUSE",
	OFFSET_CLAUSE:      "OFFSET_CLAUSE",
	RETURNING_CLAUSE:   "RETURNING_CLAUSE",
	VALUES_CLAUSE:      "VALUES_CLAUSE",
	SET_CLAUSE:         "SET_CLAUSE",
	ON_CONFLICT_CLAUSE: "ON_CONFLICT_CLAUSE",
	ALIAS:              "ALIAS",

	TABLE_ARG_LIST:      "TABLE_ARG_LIST",
	COLUMN_DEF:          "COLUMN_DEF",
	LIKE_CLAUSE:         "LIKE_CLAUSE",
	INHERITS_CLAUSE:     "INHERITS_CLAUSE",
	PARTITION_BY_CLAUSE: "PARTITION_BY_CLAUSE",
	PARTITION_OF_CLAUSE: "PARTITION_OF_CLAUSE",
	USING_METHOD:        "USING_METHOD",
	WITH_OPTIONS:        "WITH_OPTIONS",
	TABLESPACE_CLAUSE:   "TABLESPACE_CLAUSE",

	NOT_NULL_CONSTRAINT:    "NOT_NULL_CONSTRAINT",
	NULL_CONSTRAINT:        "NULL_CONSTRAINT",
	DEFAULT_CONSTRAINT:     "DEFAULT_CONSTRAINT",
	PRIMARY_KEY_CONSTRAINT: "PRIMARY_KEY_CONSTRAINT",
	UNIQUE_CONSTRAINT:      "UNIQUE_CONSTRAINT",
	CHECK_CONSTRAINT:       "CHECK_CONSTRAINT",
	FOREIGN_KEY_CONSTRAINT: "FOREIGN_KEY_CONSTRAINT",
	REFERENCES_CONSTRAINT:  "REFERENCES_CONSTRAINT",
	GENERATED_CONSTRAINT:   "GENERATED_CONSTRAINT",
	EXCLUDE_CONSTRAINT:     "EXCLUDE_CONSTRAINT",
	CONSTRAINT_NAME:        "CONSTRAINT_NAME",
	USING_INDEX:            "USING_INDEX",
	COLUMN_LIST:            "COLUMN_LIST",
	INDEX_PARAMS:           "INDEX_PARAMS",
	REFERENCES_ACTION:      "REFERENCES_ACTION",
	DEFERRABLE_CLAUSE:      "DEFERRABLE_CLAUSE",
	NOT_VALID:              "NOT_VALID",

	INDEX_EXPR_LIST: "INDEX_EXPR_LIST",
	INDEX_EXPR:      "INDEX_EXPR",

	ADD_COLUMN:              "ADD_COLUMN",
	DROP_COLUMN:             "DROP_COLUMN",
	ADD_CONSTRAINT:          "ADD_CONSTRAINT",
	DROP_CONSTRAINT:         "DROP_CONSTRAINT",
	VALIDATE_CONSTRAINT:     "VALIDATE_CONSTRAINT",
	ALTER_COLUMN:            "ALTER_COLUMN",
	RENAME_COLUMN:           "RENAME_COLUMN",
	RENAME_TABLE:            "RENAME_TABLE",
	RENAME_CONSTRAINT:       "RENAME_CONSTRAINT",
	SET_LOGGED:              "SET_LOGGED",
	SET_UNLOGGED:            "SET_UNLOGGED",
	SET_SCHEMA:              "SET_SCHEMA",
	OWNER_TO:                "OWNER_TO",
	ALTER_TABLE_ACTION_ERROR: "ALTER_TABLE_ACTION_ERROR",

	SET_TYPE:       "SET_TYPE",
	SET_DEFAULT:    "SET_DEFAULT",
	DROP_DEFAULT:   "DROP_DEFAULT",
	SET_NOT_NULL:   "SET_NOT_NULL",
	DROP_NOT_NULL:  "DROP_NOT_NULL",
	SET_STATISTICS: "SET_STATISTICS",
	SET_STORAGE:    "SET_STORAGE",

	ADD_DOMAIN_CONSTRAINT:      "ADD_DOMAIN_CONSTRAINT",
	DROP_DOMAIN_CONSTRAINT:     "DROP_DOMAIN_CONSTRAINT",
	VALIDATE_DOMAIN_CONSTRAINT: "VALIDATE_DOMAIN_CONSTRAINT",
	DOMAIN_DEFAULT:             "DOMAIN_DEFAULT",
	DOMAIN_NOT_NULL:            "DOMAIN_NOT_NULL",

	ENUM_VARIANT_LIST:      "ENUM_VARIANT_LIST",
	COMPOSITE_FIELD_LIST:   "COMPOSITE_FIELD_LIST",
	COMPOSITE_FIELD:        "COMPOSITE_FIELD",
	PARAM_LIST:             "PARAM_LIST",
	FUNC_PARAM:             "FUNC_PARAM",
	RETURNS_CLAUSE:         "RETURNS_CLAUSE",
	FUNC_OPTION:            "FUNC_OPTION",
	AS_BODY:                "AS_BODY",

	PATH_TYPE:        "PATH_TYPE",
	ARRAY_TYPE:       "ARRAY_TYPE",
	CHAR_TYPE:        "CHAR_TYPE",
	BIT_TYPE:         "BIT_TYPE",
	DOUBLE_TYPE:      "DOUBLE_TYPE",
	TIME_TYPE:        "TIME_TYPE",
	INTERVAL_TYPE:    "INTERVAL_TYPE",
	PERCENT_TYPE:     "PERCENT_TYPE",
	WITH_TIMEZONE:    "WITH_TIMEZONE",
	WITHOUT_TIMEZONE: "WITHOUT_TIMEZONE",
	TYPE_ARG_LIST:    "TYPE_ARG_LIST",

	LITERAL:              "LITERAL",
	PAREN_EXPR:           "PAREN_EXPR",
	TUPLE_EXPR:           "TUPLE_EXPR",
	ARRAY_EXPR:           "ARRAY_EXPR",
	CASE_EXPR:            "CASE_EXPR",
	WHEN_CLAUSE:          "WHEN_CLAUSE",
	ELSE_CLAUSE:          "ELSE_CLAUSE",
	CAST_EXPR:            "CAST_EXPR",
	CALL_EXPR:            "CALL_EXPR",
	ARG_LIST:             "ARG_LIST",
	FIELD_EXPR:           "FIELD_EXPR",
	INDEX_EXPR_SUBSCRIPT: "INDEX_EXPR_SUBSCRIPT",
	BIN_EXPR:             "BIN_EXPR",
	PREFIX_EXPR:          "PREFIX_EXPR",
	POSTFIX_EXPR:         "POSTFIX_EXPR",
	BETWEEN_EXPR:         "BETWEEN_EXPR",
	IN_EXPR:              "IN_EXPR",
	LIKE_EXPR:            "LIKE_EXPR",
	IS_EXPR:              "IS_EXPR",
	NAME_REF_EXPR:        "NAME_REF_EXPR",
	PARAM_EXPR:           "PARAM_EXPR",
	STAR_EXPR:            "STAR_EXPR",
}

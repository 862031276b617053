package codelang

import "strings"

// words splits a space-separated list.
func words(list string) []string { return strings.Fields(list) }

const (
	jsKeywords = `var let const function return if else for while do switch case break continue
		default new delete typeof instanceof in of try catch finally throw class extends super this
		import export from as async await yield static get set void with debugger true false null undefined`
	jsTypes    = `Array Object String Number Boolean Symbol BigInt Map Set WeakMap WeakSet Promise Date RegExp Error Function`
	jsBuiltins = `console window document globalThis JSON Math parseInt parseFloat isNaN isFinite
		setTimeout setInterval clearTimeout clearInterval require module exports process fetch`

	cKeywords = `auto break case const continue default do else enum extern for goto if inline register
		restrict return sizeof static struct switch typedef union volatile while`
	cTypes = `char short int long float double void signed unsigned _Bool bool size_t ssize_t
		int8_t int16_t int32_t int64_t uint8_t uint16_t uint32_t uint64_t FILE`
	cBuiltins = `printf scanf malloc calloc realloc free memcpy memset strlen strcpy strcmp
		fopen fclose fprintf sprintf NULL`
)

// Descriptors returns the built-in descriptor table.
func Descriptors() []Descriptor {
	return []Descriptor{
		{
			Name:    "sql",
			Aliases: words("mysql postgresql postgres psql sqlite plsql"),
			Keywords: words(`select from where insert into values update set delete create table drop alter
				add index view join inner left right outer full cross on as and or not null is in exists
				between like limit offset order by group having distinct union all case when then else end
				primary key foreign references default unique check constraint begin commit rollback
				transaction with returning if replace asc desc`),
			Types: words(`int integer bigint smallint tinyint serial bigserial decimal numeric real float double
				precision varchar char text boolean bool date time timestamp timestamptz interval uuid json jsonb blob bytea`),
			Builtins: words(`count sum avg min max coalesce nullif cast now lower upper length substring trim
				round abs concat current_date current_timestamp`),
			CommentPrefix:      "--",
			SingleQuoteStrings: true,
		},
		{
			Name:               "javascript",
			Aliases:            words("js jsx mjs cjs node"),
			Keywords:           words(jsKeywords),
			Types:              words(jsTypes),
			Builtins:           words(jsBuiltins),
			CommentPrefix:      "//",
			SingleQuoteStrings: true,
		},
		{
			Name:    "typescript",
			Aliases: words("ts tsx mts cts"),
			Keywords: words(jsKeywords + ` interface type enum namespace declare abstract implements private
				protected public readonly keyof infer is asserts satisfies`),
			Types: words(jsTypes + ` string number boolean any unknown never object bigint symbol
				Record Partial Required Readonly Pick Omit`),
			Builtins:           words(jsBuiltins),
			CommentPrefix:      "//",
			SingleQuoteStrings: true,
		},
		{
			Name: "php",
			Keywords: words(`abstract and array as break callable case catch class clone const continue declare
				default do echo else elseif empty enddeclare endfor endforeach endif endswitch endwhile extends
				final finally fn for foreach function global goto if implements include include_once instanceof
				insteadof interface isset list match namespace new or print private protected public readonly
				require require_once return static switch throw trait try unset use var while xor yield true false null`),
			Types: words(`int float bool string object mixed void never iterable self parent`),
			Builtins: words(`strlen count explode implode array_map array_filter array_merge in_array json_encode
				json_decode var_dump print_r sprintf printf str_replace substr trim`),
			CommentPrefix:      "//",
			SingleQuoteStrings: true,
		},
		{
			Name:    "python",
			Aliases: words("py py3 python3 gyp"),
			Keywords: words(`and as assert async await break class continue def del elif else except finally for
				from global if import in is lambda nonlocal not or pass raise return try while with yield match
				case True False None`),
			Types: words(`int float str bool list dict set tuple bytes bytearray complex frozenset object type`),
			Builtins: words(`print len range open input enumerate zip map filter sorted reversed sum min max abs
				any all isinstance issubclass getattr setattr hasattr super self repr format iter next`),
			CommentPrefix:      "#",
			SingleQuoteStrings: true,
		},
		{
			Name:    "rust",
			Aliases: words("rs"),
			Keywords: words(`as async await break const continue crate dyn else enum extern false fn for if impl in
				let loop match mod move mut pub ref return self static struct super trait true type unsafe use
				where while`),
			Types: words(`i8 i16 i32 i64 i128 isize u8 u16 u32 u64 u128 usize f32 f64 bool char str String Vec
				Option Result Box Rc Arc HashMap HashSet`),
			Builtins: words(`println print format vec panic assert assert_eq Some None Ok Err unwrap expect
				clone to_string`),
			CommentPrefix: "//",
		},
		{
			Name:    "go",
			Aliases: words("golang"),
			Keywords: words(`break case chan const continue default defer else fallthrough for func go goto if
				import interface map package range return select struct switch type var true false nil iota`),
			Types: words(`bool byte complex64 complex128 error float32 float64 int int8 int16 int32 int64 rune
				string uint uint8 uint16 uint32 uint64 uintptr any comparable`),
			Builtins: words(`append cap clear close complex copy delete imag len make max min new panic print
				println real recover`),
			CommentPrefix:      "//",
			SingleQuoteStrings: true,
		},
		{
			Name:    "bash",
			Aliases: words("sh shell zsh ksh shellscript"),
			Keywords: words(`if then else elif fi case esac for while until do done in function select time
				return break continue local export readonly declare unset shift source`),
			Builtins: words(`echo printf read cd pwd exit test set eval exec trap kill wait cat grep sed awk ls
				rm mkdir cp mv chmod chown curl`),
			CommentPrefix:      "#",
			SingleQuoteStrings: true,
		},
		{
			Name:               "c",
			Aliases:            words("h"),
			Keywords:           words(cKeywords),
			Types:              words(cTypes),
			Builtins:           words(cBuiltins),
			CommentPrefix:      "//",
			SingleQuoteStrings: true,
		},
		{
			Name:    "cpp",
			Aliases: words("c++ cc cxx hpp hh"),
			Keywords: words(cKeywords + ` class namespace template typename public private protected virtual
				override final friend operator new delete this throw try catch using constexpr noexcept nullptr
				true false static_cast dynamic_cast reinterpret_cast const_cast explicit mutable`),
			Types:              words(cTypes + ` string vector map set unordered_map unique_ptr shared_ptr`),
			Builtins:           words(cBuiltins + ` std cout cin cerr endl make_unique make_shared move`),
			CommentPrefix:      "//",
			SingleQuoteStrings: true,
		},
		{
			Name: "java",
			Keywords: words(`abstract assert break case catch class continue default do else enum extends final
				finally for if implements import instanceof interface native new package private protected
				public return static strictfp super switch synchronized this throw throws transient try var
				volatile while true false null record yield`),
			Types: words(`boolean byte char short int long float double void String Integer Long Double Float
				Boolean Character Object List Map Set ArrayList HashMap Optional`),
			Builtins:           words(`System out err println print Math Arrays Collections`),
			CommentPrefix:      "//",
			SingleQuoteStrings: true,
		},
		{
			Name:    "kotlin",
			Aliases: words("kt kts"),
			Keywords: words(`as break class continue do else false for fun if in interface is null object package
				return super this throw true try typealias val var when while by catch constructor data enum
				companion init inner lateinit override private protected public internal sealed suspend open
				abstract final import`),
			Types: words(`Int Long Short Byte Float Double Boolean Char String Unit Any Nothing Array List
				MutableList Map MutableMap Set`),
			Builtins:           words(`println print listOf mutableListOf mapOf setOf arrayOf require check error lazy`),
			CommentPrefix:      "//",
			SingleQuoteStrings: true,
		},
		{
			Name:    "ruby",
			Aliases: words("rb"),
			Keywords: words(`alias and begin break case class def defined do else elsif end ensure false for if
				in module next nil not or redo rescue retry return self super then true undef unless until when
				while yield require require_relative attr_accessor attr_reader attr_writer private protected
				public lambda proc`),
			Types: words(`Integer Float String Symbol Array Hash Object Class Module NilClass TrueClass FalseClass`),
			Builtins:           words(`puts print p gets each map select reject inject reduce times upto raise new`),
			CommentPrefix:      "#",
			SingleQuoteStrings: true,
		},
		{
			Name:    "dockerfile",
			Aliases: words("docker containerfile"),
			Keywords: words(`FROM RUN CMD LABEL MAINTAINER EXPOSE ENV ADD COPY ENTRYPOINT VOLUME USER WORKDIR
				ARG ONBUILD STOPSIGNAL HEALTHCHECK SHELL AS`),
			Builtins:           words(`apt apk yum dnf pip npm install update upgrade`),
			CommentPrefix:      "#",
			SingleQuoteStrings: true,
		},
	}
}

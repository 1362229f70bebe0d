package entity

// entityNames lists the HTML 4 character entity set in the order of the
// W3C DTDs (markup-significant, Latin-1, special, symbols). When two names
// resolve to the same codepoint the earlier one wins in the reverse table.
// The micro sign (U+00B5, byte 0xB5 in Windows-1252) maps to "micro"; only
// the Greek letter U+03BC maps to "mu".
var entityNames = []string{
	// markup-significant
	"quot", "amp", "lt", "gt", "apos",

	// Latin-1
	"nbsp", "iexcl", "cent", "pound", "curren", "yen", "brvbar", "sect",
	"uml", "copy", "ordf", "laquo", "not", "shy", "reg", "macr",
	"deg", "plusmn", "sup2", "sup3", "acute", "micro", "para", "middot",
	"cedil", "sup1", "ordm", "raquo", "frac14", "frac12", "frac34", "iquest",
	"Agrave", "Aacute", "Acirc", "Atilde", "Auml", "Aring", "AElig", "Ccedil",
	"Egrave", "Eacute", "Ecirc", "Euml", "Igrave", "Iacute", "Icirc", "Iuml",
	"ETH", "Ntilde", "Ograve", "Oacute", "Ocirc", "Otilde", "Ouml", "times",
	"Oslash", "Ugrave", "Uacute", "Ucirc", "Uuml", "Yacute", "THORN", "szlig",
	"agrave", "aacute", "acirc", "atilde", "auml", "aring", "aelig", "ccedil",
	"egrave", "eacute", "ecirc", "euml", "igrave", "iacute", "icirc", "iuml",
	"eth", "ntilde", "ograve", "oacute", "ocirc", "otilde", "ouml", "divide",
	"oslash", "ugrave", "uacute", "ucirc", "uuml", "yacute", "thorn", "yuml",

	// special
	"OElig", "oelig", "Scaron", "scaron", "Yuml", "circ", "tilde",
	"ensp", "emsp", "thinsp", "zwnj", "zwj", "lrm", "rlm",
	"ndash", "mdash", "lsquo", "rsquo", "sbquo", "ldquo", "rdquo", "bdquo",
	"dagger", "Dagger", "permil", "lsaquo", "rsaquo", "euro",

	// symbols and Greek
	"fnof",
	"Alpha", "Beta", "Gamma", "Delta", "Epsilon", "Zeta", "Eta", "Theta",
	"Iota", "Kappa", "Lambda", "Mu", "Nu", "Xi", "Omicron", "Pi",
	"Rho", "Sigma", "Tau", "Upsilon", "Phi", "Chi", "Psi", "Omega",
	"alpha", "beta", "gamma", "delta", "epsilon", "zeta", "eta", "theta",
	"iota", "kappa", "lambda", "mu", "nu", "xi", "omicron", "pi",
	"rho", "sigmaf", "sigma", "tau", "upsilon", "phi", "chi", "psi", "omega",
	"thetasym", "upsih", "piv",
	"bull", "hellip", "prime", "Prime", "oline", "frasl",
	"weierp", "image", "real", "trade", "alefsym",
	"larr", "uarr", "rarr", "darr", "harr", "crarr",
	"lArr", "uArr", "rArr", "dArr", "hArr",
	"forall", "part", "exist", "empty", "nabla", "isin", "notin", "ni",
	"prod", "sum", "minus", "lowast", "radic", "prop", "infin", "ang",
	"and", "or", "cap", "cup", "int", "there4", "sim", "cong",
	"asymp", "ne", "equiv", "le", "ge", "sub", "sup", "nsub",
	"sube", "supe", "oplus", "otimes", "perp", "sdot",
	"lceil", "rceil", "lfloor", "rfloor", "lang", "rang",
	"loz", "spades", "clubs", "hearts", "diams",
}

// simpleForms maps common entities and smart punctuation to readable ASCII.
// Literal backslash escapes (as found in exported JSON or CSV) collapse to a
// single space.
var simpleForms = map[string]string{
	"&nbsp;": " ", "&#160;": " ", "\u00a0": " ",
	"&amp;": "&", "&#38;": "&",
	"&quot;": `"`, "&#34;": `"`,
	"&apos;": "'", "&#39;": "'",
	"&lt;": "<", "&#60;": "<",
	"&gt;": ">", "&#62;": ">",

	"&ndash;": "-", "&#8211;": "-", "–": "-",
	"&mdash;": "--", "&#8212;": "--", "—": "--",

	"&lsquo;": "'", "&#8216;": "'", "‘": "'",
	"&rsquo;": "'", "&#8217;": "'", "’": "'",
	"&sbquo;": "'", "&#8218;": "'", "‚": "'",
	"&ldquo;": `"`, "&#8220;": `"`, "“": `"`,
	"&rdquo;": `"`, "&#8221;": `"`, "”": `"`,
	"&bdquo;": `"`, "&#8222;": `"`, "„": `"`,
	"&laquo;": "<<", "&#171;": "<<", "«": "<<",
	"&raquo;": ">>", "&#187;": ">>", "»": ">>",

	"&hellip;": "...", "&#8230;": "...", "…": "...",
	"&bull;": "*", "&#8226;": "*", "•": "*",
	"&copy;": "(c)", "&#169;": "(c)", "©": "(c)",
	"&reg;": "(R)", "&#174;": "(R)", "®": "(R)",
	"&trade;": "(TM)", "&#8482;": "(TM)", "™": "(TM)",

	`\r\n`: " ", `\r`: " ", `\n`: " ",
}

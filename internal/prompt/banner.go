package prompt

const welcome = "Welcome to the electricity bill splitter."

const art = `
                zeeeeee-
                z$$$$$$"
               d$$$$$$"
              d$$$$$P
             d$$$$$P
            $$$$$$"
          .$$$$$$"
         .$$$$$$"
        4$$$$$$$$$$$$$"
       z$$$$$$$$$$$$$"
       """""""3$$$$$"
             z$$$$P
            d$$$$"
          .$$$$$"
         z$$$$$"
        z$$$$P
       d$$$$$$$$$$"
      *******$$$"
           .$$$"
          .$$"
         4$P"
        z$"
       zP
      z"
     /
    ^
`
